package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"navetteclub/internal/domain"
	"navetteclub/internal/repositories"
	"navetteclub/internal/utils"
)

// DocsService renders booking vouchers for customers and mission orders for
// assigned providers.
type DocsService struct {
	TransferRepo repositories.TransferBookingRepo
	DisposalRepo repositories.DisposalBookingRepo
	TourBookings repositories.TourBookingRepo
	CustomerRepo repositories.CustomerRepo
	VehicleRepo  repositories.VehicleRepo
	TourRepo     repositories.TourRepo
	ProviderRepo repositories.ProviderRepo
	RequestID    string
	Loader       func(bookingType string, bookingID int64) (voucherDocData, error)
}

type voucherDocData struct {
	Reference       string
	BookingType     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	ServiceLabel    string
	PickupLocation  string
	DropoffLocation string
	Date            string
	Time            string
	Passengers      int
	VehicleName     string
	DriverName      string
	ProviderName    string
	ProviderPhone   string
	TotalCents      int64
	PaymentStatus   string
}

func (s DocsService) GenerateVoucher(bookingType string, bookingID int64) ([]byte, string, error) {
	data, err := s.loadDocData(bookingType, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("ref=%s", data.Reference))
	return buildVoucherPDF(data)
}

// GenerateMissionOrder produces the provider-facing document. Requires an
// assigned provider.
func (s DocsService) GenerateMissionOrder(bookingType string, bookingID int64) ([]byte, string, error) {
	data, err := s.loadDocData(bookingType, bookingID)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(data.ProviderName) == "" {
		return nil, "", domain.ValidationError{Field: "providerId", Msg: "aucun fournisseur n'est assigné à cette réservation"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_mission_order", fmt.Sprintf("ref=%s", data.Reference))
	return buildMissionOrderPDF(data)
}

func (s DocsService) loadDocData(bookingType string, bookingID int64) (voucherDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingType, bookingID)
	}

	var out voucherDocData
	out.BookingType = bookingType

	var customerID int64
	var providerID *int64

	switch bookingType {
	case "transfer":
		b, err := s.TransferRepo.GetByID(bookingID)
		if err != nil {
			return out, err
		}
		customerID, providerID = b.CustomerID, b.ProviderID
		out.Reference = b.Reference
		out.ServiceLabel = "Transfert privé"
		if b.TransferType == "round-trip" {
			out.ServiceLabel = "Transfert aller-retour"
		}
		out.PickupLocation = b.PickupLocation
		out.DropoffLocation = b.DropoffLocation
		out.Date = b.PickupDate
		out.Time = b.PickupTime
		out.Passengers = b.Passengers
		out.TotalCents = b.TotalPriceCents
		out.PaymentStatus = b.PaymentStatus
		if v, err := s.VehicleRepo.GetByID(b.VehicleID); err == nil {
			out.VehicleName = v.Name
			out.DriverName = v.DriverName
		}
	case "disposal":
		b, err := s.DisposalRepo.GetByID(bookingID)
		if err != nil {
			return out, err
		}
		customerID, providerID = b.CustomerID, b.ProviderID
		out.Reference = b.Reference
		out.ServiceLabel = fmt.Sprintf("Mise à disposition %dh", b.Hours)
		out.PickupLocation = b.StartLocation
		out.Date = b.Date
		out.Time = b.Time
		out.Passengers = b.Passengers
		out.TotalCents = b.TotalPriceCents
		out.PaymentStatus = b.PaymentStatus
		if v, err := s.VehicleRepo.GetByID(b.VehicleID); err == nil {
			out.VehicleName = v.Name
			out.DriverName = v.DriverName
		}
	case "tour":
		b, err := s.TourBookings.GetByID(bookingID)
		if err != nil {
			return out, err
		}
		customerID = b.CustomerID
		out.Reference = b.Reference
		out.Date = b.TourDate
		out.Passengers = b.Adults + b.Children
		out.TotalCents = b.TotalPriceCents
		out.PaymentStatus = b.PaymentStatus
		if tour, err := s.TourRepo.GetByID(b.TourID); err == nil {
			out.ServiceLabel = "Excursion " + tour.Name
			out.PickupLocation = tour.MeetingPoint
			out.Time = tour.MeetingTime
			providerID = tour.ProviderID
		}
	default:
		return out, domain.ValidationError{Field: "bookingType", Msg: "type de réservation invalide"}
	}

	if c, err := s.CustomerRepo.GetByID(customerID); err == nil {
		out.CustomerName = strings.TrimSpace(c.FirstName + " " + c.LastName)
		out.CustomerPhone = c.Phone
		out.CustomerEmail = c.Email
	}
	if providerID != nil {
		if p, err := s.ProviderRepo.GetByID(*providerID); err == nil {
			out.ProviderName = p.Name
			out.ProviderPhone = p.Phone
		}
	}

	return out, nil
}

func buildVoucherPDF(d voucherDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VOUCHER DE RESERVATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", safe(d.Reference, "-")),
		fmt.Sprintf("Client         : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Telephone      : %s", safe(d.CustomerPhone, "-")),
		fmt.Sprintf("Service        : %s", safe(d.ServiceLabel, "-")),
		fmt.Sprintf("Depart         : %s", safe(d.PickupLocation, "-")),
	}
	if strings.TrimSpace(d.DropoffLocation) != "" {
		lines = append(lines, fmt.Sprintf("Destination    : %s", safe(d.DropoffLocation, "-")))
	}
	lines = append(lines,
		fmt.Sprintf("Date / Heure   : %s %s", safe(d.Date, "-"), safe(d.Time, "-")),
		fmt.Sprintf("Passagers      : %d", d.Passengers),
	)
	if strings.TrimSpace(d.VehicleName) != "" {
		lines = append(lines, fmt.Sprintf("Vehicule       : %s", safe(d.VehicleName, "-")))
	}
	lines = append(lines,
		fmt.Sprintf("Montant        : %s EUR", utils.FormatEuro(d.TotalCents)),
		fmt.Sprintf("Paiement       : %s", paymentLabel(d.PaymentStatus)),
	)
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Merci de presenter ce voucher au chauffeur. Pour toute modification, contactez-nous en mentionnant la reference.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("VOUCHER_%s.pdf", safeFilenamePart(d.Reference))
	return buf.Bytes(), filename, nil
}

func buildMissionOrderPDF(d voucherDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ordre de mission", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ORDRE DE MISSION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Reference    : "+safe(d.Reference, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Emis le      : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Fournisseur:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Nom       : %s", safe(d.ProviderName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Telephone : %s", safe(d.ProviderPhone, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Mission:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Service      : %s", safe(d.ServiceLabel, "-")),
		fmt.Sprintf("Prise en charge : %s", safe(d.PickupLocation, "-")),
	}
	if strings.TrimSpace(d.DropoffLocation) != "" {
		lines = append(lines, fmt.Sprintf("Destination  : %s", safe(d.DropoffLocation, "-")))
	}
	lines = append(lines,
		fmt.Sprintf("Date / Heure : %s %s", safe(d.Date, "-"), safe(d.Time, "-")),
		fmt.Sprintf("Passagers    : %d", d.Passengers),
		fmt.Sprintf("Client       : %s (%s)", safe(d.CustomerName, "-"), safe(d.CustomerPhone, "-")),
	)
	if strings.TrimSpace(d.VehicleName) != "" {
		lines = append(lines, fmt.Sprintf("Vehicule     : %s", safe(d.VehicleName, "-")))
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Le montant de la course est regle directement aupres de l'agence. Ne pas encaisser le client.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("MISSION_%s.pdf", safeFilenamePart(d.Reference))
	return buf.Bytes(), filename, nil
}

func paymentLabel(status string) string {
	switch status {
	case "paid":
		return "Paye"
	case "refunded":
		return "Rembourse"
	default:
		return "En attente"
	}
}

// safe trims and strips accents; the core PDF fonts only cover latin-1 and
// mangle combining marks.
func safe(v, fallback string) string {
	v = utils.RemoveAccents(strings.TrimSpace(v))
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
