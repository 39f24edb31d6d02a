package master

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hr-budget-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/hr-budget-backend-go/internal/service/allowance"
	"github.com/google/uuid"
)

type holidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &holidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *holidayServiceImpl) ListHolidays(ctx context.Context, yearBE int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByYear(ctx, allowance.ToGregorian(yearBE))
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(h))
	}
	return responses, nil
}

// ListYears returns the Buddhist-era years that have holidays, newest first.
func (s *holidayServiceImpl) ListYears(ctx context.Context) ([]int, error) {
	years, err := s.holidayRepo.ListYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday years: %w", err)
	}

	out := make([]int, 0, len(years))
	for _, y := range years {
		out = append(out, allowance.ToBuddhistEra(y))
	}
	return out, nil
}

func (s *holidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		ID:        uuid.NewString(),
		Year:      allowance.ToGregorian(req.YearBE),
		Date:      strings.TrimSpace(req.Date),
		Name:      strings.TrimSpace(req.Name),
		IsSpecial: req.IsSpecial,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	slog.Info("Holiday created", "holiday_id", created.ID, "date", created.Date)
	return holiday.NewHolidayResponse(created), nil
}

func (s *holidayServiceImpl) UpdateHoliday(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := s.holidayRepo.Update(ctx, holiday.Holiday{
		ID:        req.ID,
		Year:      allowance.ToGregorian(req.YearBE),
		Date:      strings.TrimSpace(req.Date),
		Name:      strings.TrimSpace(req.Name),
		IsSpecial: req.IsSpecial,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	slog.Info("Holiday updated", "holiday_id", updated.ID)
	return holiday.NewHolidayResponse(updated), nil
}

func (s *holidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Holiday deleted", "holiday_id", id)
	return nil
}
