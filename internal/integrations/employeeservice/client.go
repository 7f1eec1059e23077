package employeeservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с EmployeeService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента EmployeeService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEmployee получает сотрудника по ID
func (c *Client) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	reqURL := fmt.Sprintf("%s/internal/employees/%s", c.baseURL, url.PathEscape(employeeID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid employee ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrEmployeeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var employee Employee
	if err := json.NewDecoder(resp.Body).Decode(&employee); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &employee, nil
}

// GetEmployeeWithGracefulDegradation получает сотрудника с graceful degradation
// При недоступности EmployeeService возвращает ErrServiceDegraded - вызывающий
// код может продолжить работу без денормализованного имени сотрудника
func (c *Client) GetEmployeeWithGracefulDegradation(ctx context.Context, employeeID string) (*Employee, error) {
	employee, err := c.GetEmployee(ctx, employeeID)
	if err != nil {
		// Критичная бизнес-ошибка пробрасывается дальше
		if errors.Is(err, ErrEmployeeNotFound) {
			c.log.Info("Employee id=%s not found", employeeID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("EmployeeService unavailable, applying graceful degradation for employee id=%s: %v", employeeID, err)
		return nil, fmt.Errorf("%w: employee_id=%s, error=%v", ErrServiceDegraded, employeeID, err)
	}

	return employee, nil
}
