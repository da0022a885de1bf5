package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nordkitchen/foodtruck-manager/internal/dto"
	"github.com/nordkitchen/foodtruck-manager/internal/service"
	"github.com/nordkitchen/foodtruck-manager/internal/validators"
)

// Fixed option tables, positions map straight onto the seeded reference
// row ids.
var (
	timeSlotOptions     = []string{"0800 - 1100", "1200 - 1500", "1700 - 2100"}
	participantsOptions = []string{"1 - 9", "10 - 19", "20+"}
	categoryOptions     = []string{"Side", "Main", "Beverage"}
)

// Menu is the interactive console surface over the two services.
type Menu struct {
	bookings *service.BookingService
	products *service.ProductService
	prompt   *validators.Prompter
	out      io.Writer
}

func New(bookings *service.BookingService, products *service.ProductService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		bookings: bookings,
		products: products,
		prompt:   validators.NewPrompter(in, out),
		out:      out,
	}
}

// Run drives the main menu until the user exits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.title("FIGGE FERRUMS FOODTRUCK, PRODUCT AND BOOKING MANAGER")
		fmt.Fprintln(m.out, "1. Add product")
		fmt.Fprintln(m.out, "2. Show all products")
		fmt.Fprintln(m.out, "3. Add booking")
		fmt.Fprintln(m.out, "4. Show all bookings")
		fmt.Fprintln(m.out, "x. Exit application")

		option, err := m.prompt.Raw("> ")
		if err != nil {
			return m.done(err)
		}

		switch option {
		case "1":
			err = m.addProduct(ctx)
		case "2":
			err = m.showProducts(ctx)
		case "3":
			err = m.addBooking(ctx)
		case "4":
			err = m.showBookings(ctx)
		case "x":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option, try again")
		}
		if err != nil {
			return m.done(err)
		}
	}
}

func (m *Menu) done(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) title(text string) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, strings.Repeat("=", len(text)))
	fmt.Fprintln(m.out, text)
	fmt.Fprintln(m.out, strings.Repeat("=", len(text)))
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (m *Menu) addProduct(ctx context.Context) error {
	m.title("ADD PRODUCT")

	name, err := m.prompt.Line("Name: ")
	if err != nil {
		return err
	}
	price, err := m.prompt.Price("Price: ")
	if err != nil {
		return err
	}

	names, err := m.pickIngredients(ctx)
	if err != nil {
		return err
	}

	category, err := m.prompt.Choice("Choose a category:", categoryOptions)
	if err != nil {
		return err
	}

	status := m.products.CreateProduct(ctx, service.CreateProductInput{
		Name:        name,
		Price:       price,
		Ingredients: names,
		CategoryID:  uint(category),
	})

	switch status {
	case service.StatusSuccess:
		fmt.Fprintln(m.out, "The product has been added successfully")
	case service.StatusAlreadyExists:
		fmt.Fprintln(m.out, "A product with the same name already exists")
	default:
		fmt.Fprintln(m.out, "An error occured when trying to add the product, please try again")
	}
	return nil
}

// pickIngredients lists the known ingredients and collects numbers until
// a blank or non-digit answer, requiring at least one pick.
func (m *Menu) pickIngredients(ctx context.Context) ([]string, error) {
	available, err := m.products.GetAllIngredients(ctx)
	if err != nil {
		return nil, err
	}

	for i, ing := range available {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, ing.Name)
	}
	fmt.Fprintln(m.out, "Choose one ingredient at a time, leave blank when you are done")

	var picked []string
	for {
		answer, err := m.prompt.Raw("Ingredient: ")
		if err != nil {
			return nil, err
		}

		n, convErr := strconv.Atoi(answer)
		if convErr != nil || n < 1 || n > len(available) {
			if len(picked) >= 1 {
				return picked, nil
			}
			fmt.Fprintln(m.out, "The product must contain at least one ingredient, try again")
			continue
		}
		picked = append(picked, available[n-1].Name)
	}
}

func (m *Menu) showProducts(ctx context.Context) error {
	for {
		m.title("SHOW ALL PRODUCTS")

		rows, err := m.products.GetAllProducts(ctx)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Fprintln(m.out, "No products have been added, the list is empty")
			return nil
		}

		fmt.Fprintln(m.out, "Pick a product for details or press (x) to go back to the main menu")
		for i, row := range rows {
			fmt.Fprintf(m.out, "%d\n", i+1)
			fmt.Fprintf(m.out, "Name: %s\n", row.Name)
			fmt.Fprintf(m.out, "Price: %.2f\n", row.Price)
			fmt.Fprintf(m.out, "Category: %s\n\n", row.Category)
		}

		option, err := m.prompt.Raw("> ")
		if err != nil {
			return err
		}
		if strings.EqualFold(option, "x") {
			return nil
		}
		if n, convErr := strconv.Atoi(option); convErr == nil && n >= 1 && n <= len(rows) {
			if err := m.productDetail(ctx, rows[n-1]); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(m.out, "Invalid option, try again")
	}
}

func (m *Menu) productDetail(ctx context.Context, row dto.ProductRow) error {
	m.title("PRODUCT OPTIONS")

	fmt.Fprintln(m.out, "Press (r) to remove the product, (u) to update it or (x) to go back")
	fmt.Fprintf(m.out, "Name: %s\n", row.Name)
	fmt.Fprintf(m.out, "Price: %.2f\n", row.Price)
	fmt.Fprintf(m.out, "Category: %s\n", row.Category)
	fmt.Fprintln(m.out, "Ingredients:")
	for _, name := range row.Ingredients {
		fmt.Fprintf(m.out, " * %s\n", name)
	}

	option, err := m.prompt.Raw("> ")
	if err != nil {
		return err
	}

	switch {
	case strings.EqualFold(option, "r"):
		return m.removeProduct(ctx, row.Name)
	case strings.EqualFold(option, "u"):
		return m.updateProduct(ctx, row.Name)
	default:
		return nil
	}
}

func (m *Menu) removeProduct(ctx context.Context, name string) error {
	confirm, err := m.prompt.Raw("Are you sure you want to remove this product? Press (y) to confirm: ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		return nil
	}

	switch m.products.DeleteProduct(ctx, name) {
	case service.StatusDeleted:
		fmt.Fprintln(m.out, "The product has been removed from the catalog")
	case service.StatusNotFound:
		fmt.Fprintln(m.out, "The product does not seem to exist")
	default:
		fmt.Fprintln(m.out, "An error occured when trying to remove the product, please try again")
	}
	return nil
}

func (m *Menu) updateProduct(ctx context.Context, oldName string) error {
	m.title("UPDATE PRODUCT INFORMATION")

	newName, err := m.prompt.Line("Name: ")
	if err != nil {
		return err
	}
	newPrice, err := m.prompt.Price("Price: ")
	if err != nil {
		return err
	}
	names, err := m.pickIngredients(ctx)
	if err != nil {
		return err
	}
	category, err := m.prompt.Choice("Choose a category:", categoryOptions)
	if err != nil {
		return err
	}

	switch m.products.UpdateProduct(ctx, oldName, newName, newPrice, names, uint(category)) {
	case service.StatusUpdated:
		fmt.Fprintln(m.out, "The product information has been updated successfully")
	case service.StatusAlreadyExists:
		fmt.Fprintf(m.out, "A product with the same name (%s) already exists, try again with a different name\n", newName)
	default:
		fmt.Fprintln(m.out, "An error occured when trying to update the product, please try again")
	}
	return nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (m *Menu) addBooking(ctx context.Context) error {
	m.title("ADD BOOKING")

	firstName, err := m.prompt.Line("Client first name: ")
	if err != nil {
		return err
	}
	lastName, err := m.prompt.Line("Client last name: ")
	if err != nil {
		return err
	}
	phone, err := m.prompt.Digits("Client phone number: ")
	if err != nil {
		return err
	}
	email, err := m.prompt.Line("Client email: ")
	if err != nil {
		return err
	}
	address, err := m.prompt.Line("Booking address: ")
	if err != nil {
		return err
	}
	postalCode, err := m.prompt.Digits("Booking postal code: ")
	if err != nil {
		return err
	}
	city, err := m.prompt.Line("Booking city: ")
	if err != nil {
		return err
	}
	date, err := m.prompt.Date("Date (example: 2024-12-31): ")
	if err != nil {
		return err
	}
	timeSlot, err := m.prompt.Choice("Choose the requested time:", timeSlotOptions)
	if err != nil {
		return err
	}
	participants, err := m.prompt.Choice("Choose the requested amount of participants:", participantsOptions)
	if err != nil {
		return err
	}

	status := m.bookings.CreateBooking(ctx, service.CreateBookingInput{
		FirstName:      firstName,
		LastName:       lastName,
		PhoneNumber:    phone,
		Email:          email,
		Address:        address,
		PostalCode:     postalCode,
		City:           city,
		Date:           date,
		StatusID:       1, // new bookings start out as "Booked"
		ParticipantsID: uint(participants),
		TimeSlotID:     uint(timeSlot),
	})

	switch status {
	case service.StatusSuccess:
		fmt.Fprintln(m.out, "The booking has been added to the database")
	case service.StatusAlreadyExists:
		fmt.Fprintln(m.out, "A booking with the same date already exists, please try again with a different date")
	default:
		fmt.Fprintln(m.out, "An error occured when trying to add the booking to the database, please try again")
	}
	return nil
}

func (m *Menu) showBookings(ctx context.Context) error {
	for {
		m.title("SHOW ALL BOOKINGS")

		rows, err := m.bookings.GetAllBookings(ctx)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Fprintln(m.out, "No bookings have been added, the list is empty")
			return nil
		}

		fmt.Fprintln(m.out, "Pick a booking for details or press (x) to go back to the main menu")
		for i, row := range rows {
			fmt.Fprintf(m.out, "%d. %s | %s %s | %s | %s participants | %s\n",
				i+1, row.Date, row.FirstName, row.LastName, row.Time, row.Participants, row.Status)
		}

		option, err := m.prompt.Raw("> ")
		if err != nil {
			return err
		}
		if strings.EqualFold(option, "x") {
			return nil
		}
		if n, convErr := strconv.Atoi(option); convErr == nil && n >= 1 && n <= len(rows) {
			if err := m.bookingDetail(ctx, rows[n-1]); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(m.out, "Invalid option, try again")
	}
}

func (m *Menu) bookingDetail(ctx context.Context, row dto.BookingRow) error {
	m.title("BOOKING OPTIONS")

	fmt.Fprintln(m.out, "Press (r) to remove the booking, (u) to update it,")
	fmt.Fprintln(m.out, "(c) to update the client, (l) to update the location or (x) to go back")
	fmt.Fprintf(m.out, "Client: %s %s (%s, %s)\n", row.FirstName, row.LastName, row.Email, row.PhoneNumber)
	fmt.Fprintf(m.out, "Location: %s, %s %s\n", row.Address, row.PostalCode, row.City)
	fmt.Fprintf(m.out, "Date: %s\n", row.Date)
	fmt.Fprintf(m.out, "Time: %s\n", row.Time)
	fmt.Fprintf(m.out, "Participants: %s\n", row.Participants)
	fmt.Fprintf(m.out, "Status: %s\n", row.Status)

	option, err := m.prompt.Raw("> ")
	if err != nil {
		return err
	}

	switch {
	case strings.EqualFold(option, "r"):
		return m.removeBooking(ctx, row.Date)
	case strings.EqualFold(option, "u"):
		return m.updateBooking(ctx, row)
	case strings.EqualFold(option, "c"):
		return m.updateClient(ctx, row.Email)
	case strings.EqualFold(option, "l"):
		return m.updateLocation(ctx, row.Address, row.PostalCode)
	default:
		return nil
	}
}

func (m *Menu) removeBooking(ctx context.Context, date string) error {
	confirm, err := m.prompt.Raw("Are you sure you want to remove this booking? Press (y) to confirm: ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		return nil
	}

	switch m.bookings.DeleteBooking(ctx, date) {
	case service.StatusDeleted:
		fmt.Fprintln(m.out, "The booking has been removed from the database")
	case service.StatusNotFound:
		fmt.Fprintln(m.out, "The booking does not seem to exist")
	default:
		fmt.Fprintln(m.out, "An error occured when trying to remove the booking, please try again")
	}
	return nil
}

func (m *Menu) updateBooking(ctx context.Context, row dto.BookingRow) error {
	m.title("UPDATE BOOKING")

	newDate, err := m.prompt.Date("New date (example: 2024-12-31): ")
	if err != nil {
		return err
	}
	timeSlot, err := m.prompt.Choice("Choose the requested time:", timeSlotOptions)
	if err != nil {
		return err
	}
	participants, err := m.prompt.Choice("Choose the requested amount of participants:", participantsOptions)
	if err != nil {
		return err
	}
	status, err := m.prompt.Choice("Choose the booking status:", []string{"Booked", "Canceled", "Completed"})
	if err != nil {
		return err
	}

	result := m.bookings.UpdateBooking(ctx, service.UpdateBookingInput{
		NewDate:        newDate,
		OldDate:        row.Date,
		Email:          row.Email,
		Address:        row.Address,
		PostalCode:     row.PostalCode,
		StatusID:       uint(status),
		ParticipantsID: uint(participants),
		TimeSlotID:     uint(timeSlot),
	})

	switch result {
	case service.StatusUpdated:
		fmt.Fprintln(m.out, "The booking has been updated successfully")
	case service.StatusAlreadyExists:
		fmt.Fprintln(m.out, "A booking with the same date already exists, please try again with a different date")
	default:
		fmt.Fprintln(m.out, "An error occured when trying to update the booking, please try again")
	}
	return nil
}

func (m *Menu) updateClient(ctx context.Context, oldEmail string) error {
	m.title("UPDATE CLIENT INFORMATION")

	firstName, err := m.prompt.Line("First name: ")
	if err != nil {
		return err
	}
	lastName, err := m.prompt.Line("Last name: ")
	if err != nil {
		return err
	}
	phone, err := m.prompt.Digits("Phone number: ")
	if err != nil {
		return err
	}
	newEmail, err := m.prompt.Line("Email: ")
	if err != nil {
		return err
	}

	switch m.bookings.UpdateClient(ctx, service.UpdateClientInput{
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phone,
		NewEmail:    newEmail,
		OldEmail:    oldEmail,
	}) {
	case service.StatusUpdated:
		fmt.Fprintln(m.out, "The client information has been updated successfully")
	case service.StatusAlreadyExists:
		fmt.Fprintln(m.out, "A client with the same email already exists, try again with a different email")
	default:
		fmt.Fprintln(m.out, "An error occured when trying to update the client, please try again")
	}
	return nil
}

func (m *Menu) updateLocation(ctx context.Context, oldAddress, oldPostalCode string) error {
	m.title("UPDATE LOCATION INFORMATION")

	address, err := m.prompt.Line("Address: ")
	if err != nil {
		return err
	}
	postalCode, err := m.prompt.Digits("Postal code: ")
	if err != nil {
		return err
	}
	city, err := m.prompt.Line("City: ")
	if err != nil {
		return err
	}

	switch m.bookings.UpdateLocation(ctx, service.UpdateLocationInput{
		City:          city,
		NewAddress:    address,
		NewPostalCode: postalCode,
		OldAddress:    oldAddress,
		OldPostalCode: oldPostalCode,
	}) {
	case service.StatusUpdated:
		fmt.Fprintln(m.out, "The location has been updated successfully")
	case service.StatusAlreadyExists:
		fmt.Fprintln(m.out, "A location with the same address and postal code already exists")
	default:
		fmt.Fprintln(m.out, "An error occured when trying to update the location, please try again")
	}
	return nil
}
