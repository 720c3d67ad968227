package services

import (
	"context"
	"errors"
	"testing"

	shipmentdomain "github.com/ghuser/thoron/services/shipment/domain"
	"github.com/ghuser/thoron/services/shipment/domain/models"
)

func TestCreateShipment(t *testing.T) {
	blank := "  "
	tracking := " OLD-4491-2024 "

	tests := []struct {
		name       string
		cmd        CreateShipmentCommand
		wantClass  string
		wantStatus models.ShipmentStatus
		wantErr    error
	}{
		{
			name:       "class derived from dimensions",
			cmd:        CreateShipmentCommand{Origin: "Chicago, IL", Destination: "Dallas, TX", Weight: 1850, Dimensions: "48x40x48"},
			wantClass:  "60",
			wantStatus: models.ShipmentStatusPending,
		},
		{
			name:       "explicit class kept",
			cmd:        CreateShipmentCommand{Origin: "Chicago, IL", Destination: "Dallas, TX", Weight: 1850, Dimensions: "48x40x48", FreightClass: "70", Status: "In Transit"},
			wantClass:  "70",
			wantStatus: models.ShipmentStatusInTransit,
		},
		{
			name:       "free-form dimensions leave class empty",
			cmd:        CreateShipmentCommand{Origin: "A", Destination: "B", Weight: 100, Dimensions: "2 pallets", TrackingNumber: &tracking, EstimatedDelivery: &blank},
			wantClass:  "",
			wantStatus: models.ShipmentStatusPending,
		},
		{
			name:    "unknown class",
			cmd:     CreateShipmentCommand{Origin: "A", Destination: "B", Weight: 100, FreightClass: "75"},
			wantErr: shipmentdomain.ErrInvalidShipment,
		},
		{
			name:    "unknown status",
			cmd:     CreateShipmentCommand{Origin: "A", Destination: "B", Weight: 100, Status: "Lost"},
			wantErr: shipmentdomain.ErrInvalidShipment,
		},
		{
			name:    "missing origin",
			cmd:     CreateShipmentCommand{Destination: "B", Weight: 100},
			wantErr: shipmentdomain.ErrInvalidShipment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeShipmentRepo{}
			svc := NewShipmentService(repo, testLogger())

			s, err := svc.Create(context.Background(), tt.cmd)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(repo.created) != 0 {
					t.Fatal("nothing must be stored on validation failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.FreightClass != tt.wantClass || s.Status != tt.wantStatus {
				t.Fatalf("got class %q status %q", s.FreightClass, s.Status)
			}
		})
	}
}

func TestCreateShipment_NormalizesOptionalFields(t *testing.T) {
	blank := "  "
	tracking := " OLD-4491-2024 "
	svc := NewShipmentService(&fakeShipmentRepo{}, testLogger())

	s, err := svc.Create(context.Background(), CreateShipmentCommand{
		Origin: "A", Destination: "B", Weight: 10, TrackingNumber: &tracking, EstimatedDelivery: &blank,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TrackingNumber == nil || *s.TrackingNumber != "OLD-4491-2024" {
		t.Fatalf("tracking number not trimmed: %v", s.TrackingNumber)
	}
	if s.EstimatedDelivery != nil {
		t.Fatalf("blank estimated delivery must be nil, got %q", *s.EstimatedDelivery)
	}
}

func TestCreateShipment_StorageErrorWrapped(t *testing.T) {
	repo := &fakeShipmentRepo{createErr: shipmentdomain.ErrUnknownCarrier}
	svc := NewShipmentService(repo, testLogger())

	_, err := svc.Create(context.Background(), CreateShipmentCommand{Origin: "A", Destination: "B", Weight: 10})
	if !errors.Is(err, shipmentdomain.ErrUnknownCarrier) {
		t.Fatalf("expected ErrUnknownCarrier, got %v", err)
	}
}
