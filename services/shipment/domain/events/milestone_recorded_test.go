package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/thoron/services/shipment/domain/events"
)

func TestMilestoneRecordedEvent_RoundTrip(t *testing.T) {
	at := time.Date(2026, 2, 24, 8, 0, 0, 0, time.UTC)
	evt := events.MilestoneRecordedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ShipmentID:  4,
		MilestoneID: 13,
		EventType:   "Exception",
		Location:    "Sacramento, CA",
		EventTime:   at,
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var got events.MilestoneRecordedEvent
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if got.ShipmentID != 4 || got.EventType != "Exception" || !got.EventTime.Equal(at) {
		t.Fatalf("unexpected event: %+v", got)
	}

	var raw map[string]any
	_ = json.Unmarshal(data, &raw)
	if _, ok := raw["shipmentId"]; !ok {
		t.Errorf("expected camelCase shipmentId in %s", data)
	}
}
