package services

import (
	"fmt"
	"net/mail"
	"strings"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/pricing"
	"navetteclub/internal/repositories"
	"navetteclub/internal/utils"
)

// BookingService runs the storefront booking pipeline: validate the form,
// resolve the customer, price server side, persist a pending booking. The
// client never dictates the total.
type BookingService struct {
	CustomerRepo repositories.CustomerRepo
	VehicleRepo  repositories.VehicleRepo
	TourRepo     repositories.TourRepo
	TransferRepo repositories.TransferBookingRepo
	DisposalRepo repositories.DisposalBookingRepo
	TourBookings repositories.TourBookingRepo
	RequestID    string
}

type TransferBookingInput struct {
	Customer        models.CustomerInput `json:"customer"`
	VehicleID       int64                `json:"vehicleId"`
	TransferType    string               `json:"transferType"`
	PickupLocation  string               `json:"pickupLocation"`
	DropoffLocation string               `json:"dropoffLocation"`
	PickupDate      string               `json:"pickupDate"`
	PickupTime      string               `json:"pickupTime"`
	ReturnDate      string               `json:"returnDate"`
	ReturnTime      string               `json:"returnTime"`
	Passengers      int                  `json:"passengers"`
	Luggage         int                  `json:"luggage"`
	DistanceKm      float64              `json:"distanceKm"`
	FlightNumber    string               `json:"flightNumber"`
	SpecialRequests string               `json:"specialRequests"`
}

type DisposalBookingInput struct {
	Customer        models.CustomerInput `json:"customer"`
	VehicleID       int64                `json:"vehicleId"`
	StartLocation   string               `json:"startLocation"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	Hours           int                  `json:"hours"`
	Passengers      int                  `json:"passengers"`
	SpecialRequests string               `json:"specialRequests"`
}

type TourBookingInput struct {
	Customer        models.CustomerInput `json:"customer"`
	TourID          int64                `json:"tourId"`
	TourDate        string               `json:"tourDate"`
	Adults          int                  `json:"adults"`
	Children        int                  `json:"children"`
	SpecialRequests string               `json:"specialRequests"`
}

func validateCustomer(errs *domain.FieldErrors, c models.CustomerInput) {
	if len([]rune(strings.TrimSpace(c.FirstName))) < 2 {
		errs.Add("firstName", "le prénom doit contenir au moins 2 caractères")
	}
	if len([]rune(strings.TrimSpace(c.LastName))) < 2 {
		errs.Add("lastName", "le nom doit contenir au moins 2 caractères")
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs.Add("email", "l'email est requis")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "email invalide")
	}
	if len(strings.TrimSpace(c.Phone)) < 10 {
		errs.Add("phone", "le téléphone doit contenir au moins 10 caractères")
	}
}

func validateDate(errs *domain.FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "la date est requise")
		return
	}
	if _, err := utils.ParseDate(value); err != nil {
		errs.Add(field, "date invalide, format attendu AAAA-MM-JJ")
	}
}

func validateTime(errs *domain.FieldErrors, field, value string) {
	v := strings.TrimSpace(value)
	if v == "" {
		errs.Add(field, "l'heure est requise")
		return
	}
	if len(v) != 5 || v[2] != ':' {
		errs.Add(field, "heure invalide, format attendu HH:MM")
	}
}

// ResolveCustomer validates a customer form and creates or fetches the row by
// email. Used standalone by the customer endpoint and inside every booking
// pipeline.
func (s BookingService) ResolveCustomer(in models.CustomerInput) (models.Customer, error) {
	var errs domain.FieldErrors
	validateCustomer(&errs, in)
	if !errs.Empty() {
		return models.Customer{}, errs
	}
	return s.CustomerRepo.UpsertByEmail(in)
}

// CreateTransferBooking validates, resolves the customer, prices the trip from
// the vehicle tariff and persists a pending booking. Validation failure stops
// the pipeline before any write.
func (s BookingService) CreateTransferBooking(in TransferBookingInput) (models.TransferBooking, models.Customer, error) {
	var errs domain.FieldErrors
	validateCustomer(&errs, in.Customer)
	if in.VehicleID <= 0 {
		errs.Add("vehicleId", "le véhicule est requis")
	}
	if in.TransferType != "one-way" && in.TransferType != "round-trip" {
		errs.Add("transferType", "type de transfert invalide")
	}
	if strings.TrimSpace(in.PickupLocation) == "" {
		errs.Add("pickupLocation", "le lieu de prise en charge est requis")
	}
	if strings.TrimSpace(in.DropoffLocation) == "" {
		errs.Add("dropoffLocation", "la destination est requise")
	}
	validateDate(&errs, "pickupDate", in.PickupDate)
	validateTime(&errs, "pickupTime", in.PickupTime)
	if in.TransferType == "round-trip" {
		validateDate(&errs, "returnDate", in.ReturnDate)
		validateTime(&errs, "returnTime", in.ReturnTime)
	}
	if in.Passengers <= 0 {
		errs.Add("passengers", "au moins un passager est requis")
	}
	if in.DistanceKm <= 0 {
		errs.Add("distanceKm", "la distance est requise")
	}
	if !errs.Empty() {
		return models.TransferBooking{}, models.Customer{}, errs
	}

	vehicle, err := s.VehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return models.TransferBooking{}, models.Customer{}, err
	}
	if !vehicle.IsAvailable {
		return models.TransferBooking{}, models.Customer{}, domain.ValidationError{Field: "vehicleId", Msg: "ce véhicule n'est pas disponible"}
	}

	total, err := s.transferTotal(vehicle, in.PickupDate, in.DistanceKm)
	if err != nil {
		return models.TransferBooking{}, models.Customer{}, err
	}
	if in.TransferType == "round-trip" {
		total = pricing.RoundTripTotalCents(total)
	}

	customer, err := s.CustomerRepo.UpsertByEmail(in.Customer)
	if err != nil {
		return models.TransferBooking{}, models.Customer{}, err
	}

	booking, err := s.TransferRepo.Create(models.TransferBooking{
		CustomerID:      customer.ID,
		VehicleID:       vehicle.ID,
		TransferType:    in.TransferType,
		PickupLocation:  strings.TrimSpace(in.PickupLocation),
		DropoffLocation: strings.TrimSpace(in.DropoffLocation),
		PickupDate:      in.PickupDate,
		PickupTime:      in.PickupTime,
		ReturnDate:      in.ReturnDate,
		ReturnTime:      in.ReturnTime,
		Passengers:      in.Passengers,
		Luggage:         in.Luggage,
		FlightNumber:    strings.TrimSpace(in.FlightNumber),
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		TotalPriceCents: total,
	})
	if err != nil {
		return models.TransferBooking{}, models.Customer{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "transfer_created",
		fmt.Sprintf("ref=%s total=%s", booking.Reference, utils.FormatEuro(total)))
	return booking, customer, nil
}

// transferTotal picks the per-km rate for the pickup date, preferring an
// active seasonal window over the vehicle's default rate.
func (s BookingService) transferTotal(vehicle models.Vehicle, pickupDate string, distanceKm float64) (int64, error) {
	if vehicle.PricePerKmCents == nil {
		return 0, domain.ValidationError{Field: "vehicleId", Msg: "ce véhicule n'est pas tarifé au kilomètre"}
	}
	perKm := *vehicle.PricePerKmCents

	date, err := utils.ParseDate(pickupDate)
	if err == nil {
		seasons, serr := s.VehicleRepo.SeasonalPrices(vehicle.ID)
		if serr == nil && len(seasons) > 0 {
			windows := make([]pricing.SeasonWindow, len(seasons))
			rates := make([]int64, len(seasons))
			for i, sp := range seasons {
				windows[i] = pricing.SeasonWindow{Name: sp.SeasonName, StartDate: sp.StartDate, EndDate: sp.EndDate}
				rates[i] = sp.PricePerKmCents
			}
			perKm, _, _ = pricing.SeasonalRate(windows, rates, date, perKm)
		}
	}

	return pricing.TransferTotalCents(vehicle.BasePriceCents, perKm, distanceKm), nil
}

func (s BookingService) CreateDisposalBooking(in DisposalBookingInput) (models.DisposalBooking, models.Customer, error) {
	var errs domain.FieldErrors
	validateCustomer(&errs, in.Customer)
	if in.VehicleID <= 0 {
		errs.Add("vehicleId", "le véhicule est requis")
	}
	if strings.TrimSpace(in.StartLocation) == "" {
		errs.Add("startLocation", "le lieu de départ est requis")
	}
	validateDate(&errs, "date", in.Date)
	validateTime(&errs, "time", in.Time)
	if in.Hours <= 0 {
		errs.Add("hours", "la durée doit être d'au moins une heure")
	}
	if in.Passengers <= 0 {
		errs.Add("passengers", "au moins un passager est requis")
	}
	if !errs.Empty() {
		return models.DisposalBooking{}, models.Customer{}, errs
	}

	vehicle, err := s.VehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return models.DisposalBooking{}, models.Customer{}, err
	}
	if !vehicle.IsAvailable {
		return models.DisposalBooking{}, models.Customer{}, domain.ValidationError{Field: "vehicleId", Msg: "ce véhicule n'est pas disponible"}
	}

	perHour, err := s.hourlyRate(vehicle, in.Date)
	if err != nil {
		return models.DisposalBooking{}, models.Customer{}, err
	}
	total := pricing.DisposalTotalCents(perHour, in.Hours)

	customer, err := s.CustomerRepo.UpsertByEmail(in.Customer)
	if err != nil {
		return models.DisposalBooking{}, models.Customer{}, err
	}

	booking, err := s.DisposalRepo.Create(models.DisposalBooking{
		CustomerID:      customer.ID,
		VehicleID:       vehicle.ID,
		StartLocation:   strings.TrimSpace(in.StartLocation),
		Date:            in.Date,
		Time:            in.Time,
		Hours:           in.Hours,
		Passengers:      in.Passengers,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		TotalPriceCents: total,
	})
	if err != nil {
		return models.DisposalBooking{}, models.Customer{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "disposal_created",
		fmt.Sprintf("ref=%s total=%s", booking.Reference, utils.FormatEuro(total)))
	return booking, customer, nil
}

func (s BookingService) hourlyRate(vehicle models.Vehicle, date string) (int64, error) {
	prices, err := s.VehicleRepo.HourlyPrices(vehicle.ID)
	if err != nil {
		return 0, err
	}
	if len(prices) == 0 {
		return 0, domain.ValidationError{Field: "vehicleId", Msg: "ce véhicule n'est pas proposé à la mise à disposition"}
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return 0, domain.ValidationError{Field: "date", Msg: "date invalide"}
	}
	windows := make([]pricing.SeasonWindow, len(prices))
	rates := make([]int64, len(prices))
	for i, p := range prices {
		windows[i] = pricing.SeasonWindow{Name: p.SeasonName, StartDate: p.StartDate, EndDate: p.EndDate}
		rates[i] = p.PricePerHourCents
	}
	rate, _, _ := pricing.SeasonalRate(windows, rates, day, prices[0].PricePerHourCents)
	return rate, nil
}

func (s BookingService) CreateTourBooking(in TourBookingInput) (models.TourBooking, models.Customer, error) {
	var errs domain.FieldErrors
	validateCustomer(&errs, in.Customer)
	if in.TourID <= 0 {
		errs.Add("tourId", "l'excursion est requise")
	}
	validateDate(&errs, "tourDate", in.TourDate)
	if in.Adults <= 0 {
		errs.Add("adults", "au moins un adulte est requis")
	}
	if in.Children < 0 {
		errs.Add("children", "nombre d'enfants invalide")
	}
	if !errs.Empty() {
		return models.TourBooking{}, models.Customer{}, errs
	}

	tour, err := s.TourRepo.GetByID(in.TourID)
	if err != nil {
		return models.TourBooking{}, models.Customer{}, err
	}
	if !tour.IsActive {
		return models.TourBooking{}, models.Customer{}, domain.ValidationError{Field: "tourId", Msg: "cette excursion n'est plus proposée"}
	}

	// Capacity and minimum participants are informational. Storefronts show
	// remaining seats; an administrator arbitrates overbooked dates.
	total := pricing.TourTotalCents(tour.PriceCents, tour.PriceChildCents, in.Adults, in.Children)

	customer, err := s.CustomerRepo.UpsertByEmail(in.Customer)
	if err != nil {
		return models.TourBooking{}, models.Customer{}, err
	}

	booking, err := s.TourBookings.Create(models.TourBooking{
		CustomerID:      customer.ID,
		TourID:          tour.ID,
		TourDate:        in.TourDate,
		Adults:          in.Adults,
		Children:        in.Children,
		TotalPriceCents: total,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
	})
	if err != nil {
		return models.TourBooking{}, models.Customer{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "tour_created",
		fmt.Sprintf("ref=%s tour=%d total=%s", booking.Reference, tour.ID, utils.FormatEuro(total)))
	return booking, customer, nil
}

// QuoteTransfer prices a transfer without creating anything. Same tariff
// resolution as CreateTransferBooking.
func (s BookingService) QuoteTransfer(vehicleID int64, pickupDate string, distanceKm float64, roundTrip bool) (int64, error) {
	if distanceKm <= 0 {
		return 0, domain.ValidationError{Field: "distanceKm", Msg: "la distance est requise"}
	}
	vehicle, err := s.VehicleRepo.GetByID(vehicleID)
	if err != nil {
		return 0, err
	}
	total, err := s.transferTotal(vehicle, pickupDate, distanceKm)
	if err != nil {
		return 0, err
	}
	if roundTrip {
		total = pricing.RoundTripTotalCents(total)
	}
	return total, nil
}

// VehicleQuote pairs a vehicle with its computed transfer total.
type VehicleQuote struct {
	Vehicle         models.Vehicle `json:"vehicle"`
	TotalPriceCents int64          `json:"totalPriceCents"`
}

// QuoteVehicles prices every available per-km vehicle fitting the passenger
// count for one trip. Vehicles without a per-km tariff are skipped.
func (s BookingService) QuoteVehicles(pickupDate string, distanceKm float64, passengers int, roundTrip bool) ([]VehicleQuote, error) {
	if distanceKm <= 0 {
		return nil, domain.ValidationError{Field: "distanceKm", Msg: "la distance est requise"}
	}

	vehicles, err := s.VehicleRepo.List(repositories.VehicleFilter{OnlyAvailable: true, MinCapacity: passengers})
	if err != nil {
		return nil, err
	}

	quotes := []VehicleQuote{}
	for _, v := range vehicles {
		if v.PricePerKmCents == nil {
			continue
		}
		total, err := s.transferTotal(v, pickupDate, distanceKm)
		if err != nil {
			continue
		}
		if roundTrip {
			total = pricing.RoundTripTotalCents(total)
		}
		quotes = append(quotes, VehicleQuote{Vehicle: v, TotalPriceCents: total})
	}
	return quotes, nil
}

// QuoteDisposal prices an hourly disposal without creating anything.
func (s BookingService) QuoteDisposal(vehicleID int64, date string, hours int) (int64, error) {
	if hours <= 0 {
		return 0, domain.ValidationError{Field: "hours", Msg: "la durée doit être d'au moins une heure"}
	}
	vehicle, err := s.VehicleRepo.GetByID(vehicleID)
	if err != nil {
		return 0, err
	}
	perHour, err := s.hourlyRate(vehicle, date)
	if err != nil {
		return 0, err
	}
	return pricing.DisposalTotalCents(perHour, hours), nil
}
