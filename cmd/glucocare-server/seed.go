package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glucocare/glucocare/internal/domain/appointments"
	"github.com/glucocare/glucocare/internal/domain/identity"
	"github.com/glucocare/glucocare/internal/domain/readings"
)

const (
	seedAdminEmail   = "admin@glucocare.demo"
	seedPatientEmail = "demo@glucocare.demo"
	seedPassword     = "demo1234"
)

// runSeed inserts a demo admin and a demo patient with a handful of recent
// readings and one upcoming appointment. Accounts that already exist are
// left untouched, so the command is safe to re-run.
func runSeed(ctx context.Context, pool *pgxpool.Pool) error {
	userRepo := identity.NewUserRepo(pool)
	identitySvc := identity.NewService(userRepo)
	readingSvc := readings.NewService(readings.NewReadingRepo(pool))
	appointmentSvc := appointments.NewService(appointments.NewAppointmentRepo(pool))

	if _, err := userRepo.GetByEmail(ctx, seedAdminEmail); err != nil {
		if !errors.Is(err, identity.ErrNotFound) {
			return err
		}
		if _, err := identitySvc.Signup(ctx, identity.SignupInput{
			Name:     "Admin Demo",
			Email:    seedAdminEmail,
			Password: seedPassword,
		}); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		fmt.Printf("Created admin account %s\n", seedAdminEmail)
	} else {
		fmt.Printf("Admin account %s already exists, skipping\n", seedAdminEmail)
	}

	if _, err := userRepo.GetByEmail(ctx, seedPatientEmail); err == nil {
		fmt.Printf("Patient account %s already exists, skipping\n", seedPatientEmail)
		return nil
	} else if !errors.Is(err, identity.ErrNotFound) {
		return err
	}

	diabetesType := "type-2"
	patient, err := identitySvc.Signup(ctx, identity.SignupInput{
		Name:         "Dana Demo",
		Email:        seedPatientEmail,
		Password:     seedPassword,
		DiabetesType: &diabetesType,
	})
	if err != nil {
		return fmt.Errorf("seed patient: %w", err)
	}
	fmt.Printf("Created patient account %s\n", seedPatientEmail)

	samples := []struct {
		value   float64
		label   string
		daysAgo int
	}{
		{6.2, "fasting", 5},
		{7.8, "post-meal", 4},
		{5.9, "bedtime", 3},
		{6.5, "pre-meal", 2},
		{5.4, "fasting", 1},
	}
	for _, s := range samples {
		label := s.label
		ts := time.Now().AddDate(0, 0, -s.daysAgo)
		if _, err := readingSvc.Log(ctx, patient.ID, readings.LogInput{
			Value:     s.value,
			Unit:      readings.UnitMmolL,
			Label:     &label,
			Timestamp: &ts,
		}); err != nil {
			return fmt.Errorf("seed reading: %w", err)
		}
	}
	fmt.Printf("Logged %d sample readings\n", len(samples))

	reason := "Quarterly checkup"
	if _, err := appointmentSvc.Create(ctx, patient.ID, appointments.CreateInput{
		Date:   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:   "10:30",
		Doctor: "Dr. Patel",
		Reason: &reason,
	}); err != nil {
		return fmt.Errorf("seed appointment: %w", err)
	}
	fmt.Println("Scheduled one upcoming appointment")

	return nil
}
