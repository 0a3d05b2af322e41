package siteinfo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repositories --
//
// Each mock holds at most one record, like the singleton tables.

type mockContactInfoRepo struct{ rec *ContactInfo }

func (m *mockContactInfoRepo) Get(_ context.Context) (*ContactInfo, error) {
	if m.rec == nil {
		return nil, ErrNotFound
	}
	return m.rec, nil
}

func (m *mockContactInfoRepo) Upsert(_ context.Context, in *ContactInfo) error {
	if m.rec != nil {
		in.ID = m.rec.ID
		in.CreatedAt = m.rec.CreatedAt
	} else {
		in.ID = uuid.New()
		in.CreatedAt = time.Now()
	}
	in.UpdatedAt = time.Now()
	m.rec = in
	return nil
}

type mockFooterInfoRepo struct{ rec *FooterInfo }

func (m *mockFooterInfoRepo) Get(_ context.Context) (*FooterInfo, error) {
	if m.rec == nil {
		return nil, ErrNotFound
	}
	return m.rec, nil
}

func (m *mockFooterInfoRepo) Upsert(_ context.Context, in *FooterInfo) error {
	if m.rec != nil {
		in.ID = m.rec.ID
		in.CreatedAt = m.rec.CreatedAt
	} else {
		in.ID = uuid.New()
		in.CreatedAt = time.Now()
	}
	in.UpdatedAt = time.Now()
	m.rec = in
	return nil
}

type mockHospitalInfoRepo struct{ rec *HospitalInfo }

func (m *mockHospitalInfoRepo) Get(_ context.Context) (*HospitalInfo, error) {
	if m.rec == nil {
		return nil, ErrNotFound
	}
	return m.rec, nil
}

func (m *mockHospitalInfoRepo) Upsert(_ context.Context, in *HospitalInfo) error {
	if m.rec != nil {
		in.ID = m.rec.ID
		in.CreatedAt = m.rec.CreatedAt
	} else {
		in.ID = uuid.New()
		in.CreatedAt = time.Now()
	}
	in.UpdatedAt = time.Now()
	m.rec = in
	return nil
}

type mockClinicHoursRepo struct{ rec *ClinicHours }

func (m *mockClinicHoursRepo) Get(_ context.Context) (*ClinicHours, error) {
	if m.rec == nil {
		return nil, ErrNotFound
	}
	return m.rec, nil
}

func (m *mockClinicHoursRepo) Upsert(_ context.Context, in *ClinicHours) error {
	if m.rec != nil {
		in.ID = m.rec.ID
		in.CreatedAt = m.rec.CreatedAt
	} else {
		in.ID = uuid.New()
		in.CreatedAt = time.Now()
	}
	in.UpdatedAt = time.Now()
	m.rec = in
	return nil
}

func newTestService() *Service {
	return NewService(
		&mockContactInfoRepo{},
		&mockFooterInfoRepo{},
		&mockHospitalInfoRepo{},
		&mockClinicHoursRepo{},
	)
}

func TestContactInfo_UpsertKeepsSingleRecord(t *testing.T) {
	svc := newTestService()

	if _, err := svc.GetContactInfo(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	first := &ContactInfo{Phone: "02-1234-5678", Address: "12 Main St"}
	if err := svc.SaveContactInfo(context.Background(), first); err != nil {
		t.Fatalf("SaveContactInfo failed: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Error("expected record ID to be assigned")
	}

	second := &ContactInfo{Phone: "02-9999-0000", Address: "12 Main St"}
	if err := svc.SaveContactInfo(context.Background(), second); err != nil {
		t.Fatalf("SaveContactInfo failed: %v", err)
	}
	if second.ID != first.ID {
		t.Error("expected the second save to update the same record")
	}

	got, err := svc.GetContactInfo(context.Background())
	if err != nil {
		t.Fatalf("GetContactInfo failed: %v", err)
	}
	if got.Phone != "02-9999-0000" {
		t.Errorf("expected updated phone, got %s", got.Phone)
	}
}

func TestSaveContactInfo_Validation(t *testing.T) {
	svc := newTestService()

	if err := svc.SaveContactInfo(context.Background(), &ContactInfo{Address: "A"}); err == nil {
		t.Error("expected error for missing phone")
	}
	if err := svc.SaveContactInfo(context.Background(), &ContactInfo{Phone: "02"}); err == nil {
		t.Error("expected error for missing address")
	}
}

func TestSaveFooterInfo_RequiresHospitalName(t *testing.T) {
	svc := newTestService()

	if err := svc.SaveFooterInfo(context.Background(), &FooterInfo{}); err == nil {
		t.Error("expected error for missing hospital_name")
	}
	if err := svc.SaveFooterInfo(context.Background(), &FooterInfo{HospitalName: "City Hospital"}); err != nil {
		t.Errorf("SaveFooterInfo failed: %v", err)
	}
}

func TestSaveHospitalInfo(t *testing.T) {
	svc := newTestService()

	greeting := "Welcome to our hospital."
	in := &HospitalInfo{Name: "City Hospital", Greeting: &greeting}
	if err := svc.SaveHospitalInfo(context.Background(), in); err != nil {
		t.Fatalf("SaveHospitalInfo failed: %v", err)
	}

	got, err := svc.GetHospitalInfo(context.Background())
	if err != nil {
		t.Fatalf("GetHospitalInfo failed: %v", err)
	}
	if got.Greeting == nil || *got.Greeting != greeting {
		t.Error("expected greeting to round-trip")
	}
}

func TestSaveClinicHours_RequiresWeekdayHours(t *testing.T) {
	svc := newTestService()

	if err := svc.SaveClinicHours(context.Background(), &ClinicHours{}); err == nil {
		t.Error("expected error for missing weekday_hours")
	}
	if err := svc.SaveClinicHours(context.Background(), &ClinicHours{WeekdayHours: "09:00-18:00"}); err != nil {
		t.Errorf("SaveClinicHours failed: %v", err)
	}
}
