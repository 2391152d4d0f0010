package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"leadg/pkg/model"
)

// AppointmentClient calls the appointments HTTP API.
type AppointmentClient struct {
	httpClient *HttpClient
}

func NewAppointmentClient(baseURL string) *AppointmentClient {
	return &AppointmentClient{
		httpClient: NewHttpClient(baseURL),
	}
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type Page struct {
	Data       []*model.Appointment `json:"data"`
	TotalCount int64                `json:"total_count"`
	Limit      int                  `json:"limit"`
	Offset     int64                `json:"offset"`
}

func (c *AppointmentClient) Calendar(ctx context.Context) (*model.CalendarWindow, error) {
	var out envelope[model.CalendarWindow]
	if err := c.httpClient.DoJSON(ctx, http.MethodGet, "/api/v1/appointments/calendar", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *AppointmentClient) Availability(ctx context.Context, date, timezone string, includeBooked bool) (*model.Availability, error) {
	q := url.Values{}
	q.Set("date", date)
	if timezone != "" {
		q.Set("timezone", timezone)
	}
	if includeBooked {
		q.Set("include_booked", "true")
	}

	var out envelope[model.Availability]
	if err := c.httpClient.DoJSON(ctx, http.MethodGet, "/api/v1/appointments/availability?"+q.Encode(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// Create submits a booking. A non-empty idempotencyKey makes retries safe.
func (c *AppointmentClient) Create(ctx context.Context, input *model.AppointmentInput, idempotencyKey string) (*model.Appointment, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}

	var out envelope[model.Appointment]
	if err := c.httpClient.DoJSON(ctx, http.MethodPost, "/api/v1/appointments", input, headers, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *AppointmentClient) Get(ctx context.Context, id string) (*model.Appointment, error) {
	var out envelope[model.Appointment]
	if err := c.httpClient.DoJSON(ctx, http.MethodGet, "/api/v1/appointments/id/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *AppointmentClient) List(ctx context.Context, filter model.AppointmentFilter) (*Page, error) {
	q := url.Values{}
	if filter.Date != "" {
		q.Set("date", filter.Date)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.FormatInt(filter.Offset, 10))
	}

	path := "/api/v1/appointments"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out Page
	if err := c.httpClient.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AppointmentClient) UpdateStatus(ctx context.Context, id, status string) (*model.Appointment, error) {
	var out envelope[model.Appointment]
	path := "/api/v1/appointments/id/" + url.PathEscape(id) + "/status"
	if err := c.httpClient.DoJSON(ctx, http.MethodPatch, path, model.StatusUpdate{Status: status}, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
