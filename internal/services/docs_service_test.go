package services

import (
	"strings"
	"testing"
)

func TestDocsServiceGenerateVoucherAndMissionOrder(t *testing.T) {
	loader := func(bookingType string, bookingID int64) (voucherDocData, error) {
		return voucherDocData{
			Reference:       "TR-20260901-123456",
			BookingType:     bookingType,
			CustomerName:    "Amira Ben Salah",
			CustomerPhone:   "+21612345678",
			ServiceLabel:    "Transfert privé",
			PickupLocation:  "Aéroport Tunis-Carthage",
			DropoffLocation: "Hammamet",
			Date:            "2026-09-15",
			Time:            "10:30",
			Passengers:      3,
			VehicleName:     "Mercedes Classe V",
			ProviderName:    "Sahara Transport",
			ProviderPhone:   "+21698765432",
			TotalCents:      8500,
			PaymentStatus:   "paid",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateVoucher("transfer", 1)
	if err != nil {
		t.Fatalf("GenerateVoucher returned error: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(filename, "VOUCHER_TR-") {
		t.Fatalf("unexpected voucher output: %d bytes, name %q", len(pdf), filename)
	}

	mission, missionName, err := svc.GenerateMissionOrder("transfer", 1)
	if err != nil {
		t.Fatalf("GenerateMissionOrder returned error: %v", err)
	}
	if len(mission) == 0 || !strings.HasPrefix(missionName, "MISSION_TR-") {
		t.Fatalf("unexpected mission order output: %d bytes, name %q", len(mission), missionName)
	}
}

func TestMissionOrderRequiresAssignedProvider(t *testing.T) {
	loader := func(bookingType string, bookingID int64) (voucherDocData, error) {
		return voucherDocData{Reference: "DP-20260901-000001"}, nil
	}

	svc := DocsService{Loader: loader}
	if _, _, err := svc.GenerateMissionOrder("disposal", 1); err == nil {
		t.Fatalf("mission order without provider should fail")
	}
}
