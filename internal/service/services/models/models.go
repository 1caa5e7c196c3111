package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модели

// DaySchedule рабочее окно одного дня недели
type DaySchedule struct {
	DayOfWeek int    `json:"dayOfWeek"` // 1 = понедельник .. 7 = воскресенье
	Available bool   `json:"available"`
	StartTime string `json:"startTime,omitempty"` // "08:00"
	EndTime   string `json:"endTime,omitempty"`   // "17:00"
}

// SaveServiceRequest запрос на создание или обновление услуги.
// Расписание передается целиком: дни, которых нет в списке, недоступны.
type SaveServiceRequest struct {
	Name            string        `json:"name"`
	DurationMinutes int           `json:"durationMinutes"`
	Description     string        `json:"description,omitempty"`
	Color           string        `json:"color,omitempty"`
	Timezone        string        `json:"timezone"`
	Schedule        []DaySchedule `json:"schedule"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	DurationMinutes int           `json:"durationMinutes"`
	Description     string        `json:"description,omitempty"`
	Color           string        `json:"color,omitempty"`
	Timezone        string        `json:"timezone"`
	Schedule        []DaySchedule `json:"schedule"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// ToDomainService конвертирует запрос в доменную модель.
// Для доступных дней без явных границ подставляется окно по умолчанию.
func (r *SaveServiceRequest) ToDomainService() (*domain.Service, error) {
	days := make(map[int]domain.DayWindow, len(r.Schedule))
	for _, day := range r.Schedule {
		window := domain.DayWindow{Available: day.Available}

		if day.Available {
			start := day.StartTime
			end := day.EndTime
			if start == "" {
				start = domain.DefaultDayStart
			}
			if end == "" {
				end = domain.DefaultDayEnd
			}

			startTime, err := types.NewTimeStringFromString(start)
			if err != nil {
				return nil, fmt.Errorf("day %d start time: %w", day.DayOfWeek, err)
			}
			endTime, err := types.NewTimeStringFromString(end)
			if err != nil {
				return nil, fmt.Errorf("day %d end time: %w", day.DayOfWeek, err)
			}

			window.Start = startTime
			window.End = endTime
		}

		days[day.DayOfWeek] = window
	}

	template, err := domain.NewScheduleTemplate(days, nil)
	if err != nil {
		return nil, err
	}

	return &domain.Service{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Description:     r.Description,
		Color:           r.Color,
		Timezone:        r.Timezone,
		Template:        template,
	}, nil
}

// FromDomainService конвертирует доменную модель в ответ
func FromDomainService(svc *domain.Service) *ServiceResponse {
	schedule := make([]DaySchedule, 0, 7)
	for day := domain.DayMonday; day <= domain.DaySunday; day++ {
		window := svc.Template.Windows()[day]
		entry := DaySchedule{
			DayOfWeek: day,
			Available: window.Available,
		}
		if window.Available {
			entry.StartTime = window.Start.String()
			entry.EndTime = window.End.String()
		}
		schedule = append(schedule, entry)
	}

	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Description:     svc.Description,
		Color:           svc.Color,
		Timezone:        svc.Timezone,
		Schedule:        schedule,
		CreatedAt:       svc.CreatedAt,
		UpdatedAt:       svc.UpdatedAt,
	}
}
