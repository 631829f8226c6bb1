package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
)

func TestReadingInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer func() { _ = db.Close() }()

	ts := time.Unix(1700000000, 0)
	mock.ExpectExec("INSERT INTO vehicle_readings").
		WithArgs("VH-1001", 40.7, -74.0, 55.0, 60.0, 80.0, ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewReadingRepo(db)
	err = repo.Insert(context.Background(), &domain.Reading{
		VehicleID: "VH-1001",
		Lat:       40.7,
		Lon:       -74.0,
		Speed:     55,
		Fuel:      60,
		Temp:      80,
		Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
