package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// CivilTimeFormat формат даты-времени на границе API: локальное гражданское
// время без смещения и без суффикса "Z". Конвертация в UTC намеренно не
// выполняется, чтобы исключить сдвиги таймзон между клиентом и сервером.
const CivilTimeFormat = "2006-01-02T15:04:05"

// civilTimeFormats допустимые входные форматы (клиенты присылают время
// с миллисекундами и без)
var civilTimeFormats = []string{
	CivilTimeFormat,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04",
}

var (
	// ErrInvalidCivilTime возвращается при некорректном формате даты-времени
	ErrInvalidCivilTime = errors.New("types: invalid civil datetime format")
)

// CivilTime момент времени в локальном гражданском представлении
// Сериализуется в JSON и БД как "YYYY-MM-DDTHH:MM:SS" без таймзоны
type CivilTime struct {
	t time.Time
}

// NewCivilTime создает CivilTime из time.Time (с точностью до секунды)
func NewCivilTime(t time.Time) CivilTime {
	return CivilTime{t: t.Truncate(time.Second)}
}

// ParseCivilTime парсит строку в одном из допустимых форматов
func ParseCivilTime(s string) (CivilTime, error) {
	for _, format := range civilTimeFormats {
		if parsed, err := time.ParseInLocation(format, s, time.Local); err == nil {
			return CivilTime{t: parsed}, nil
		}
	}
	return CivilTime{}, fmt.Errorf("%w: %q", ErrInvalidCivilTime, s)
}

// Time возвращает значение как time.Time
func (c CivilTime) Time() time.Time {
	return c.t
}

// IsZero возвращает true, если значение не задано
func (c CivilTime) IsZero() bool {
	return c.t.IsZero()
}

// String возвращает строковое представление в формате CivilTimeFormat
func (c CivilTime) String() string {
	return c.t.Format(CivilTimeFormat)
}

// MarshalJSON сериализует время без суффикса "Z"
func (c CivilTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON парсит время из JSON, принимая варианты с миллисекундами и без
func (c *CivilTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*c = CivilTime{}
		return nil
	}

	parsed, err := ParseCivilTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value реализует driver.Valuer для записи в колонку timestamp
func (c CivilTime) Value() (driver.Value, error) {
	if c.IsZero() {
		return nil, nil
	}
	return c.t, nil
}

// Scan реализует sql.Scanner для чтения из колонки timestamp
func (c *CivilTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = CivilTime{}
		return nil
	case time.Time:
		// lib/pq отдаёт timestamp without time zone в UTC-локации,
		// переинтерпретируем стеночное время как локальное
		*c = CivilTime{t: time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), 0, time.Local)}
		return nil
	case string:
		parsed, err := ParseCivilTime(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		return c.Scan(string(v))
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidCivilTime, src)
	}
}
