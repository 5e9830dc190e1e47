package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sefazor/eventix-backend/internal/models"
)

const dateOnlyLayout = "2006-01-02"

// body is a decoded JSON request body before any coercion.
type body map[string]interface{}

func parseBody(c *fiber.Ctx) (body, error) {
	b := body{}
	raw := c.Body()
	if len(strings.TrimSpace(string(raw))) == 0 {
		return b, nil
	}
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	return b, nil
}

// firstMissing returns the first field, in the given order, whose value is
// absent, null, an empty string, zero or false.
func (b body) firstMissing(fields ...string) string {
	for _, field := range fields {
		if isEmpty(b[field]) {
			return field
		}
	}
	return ""
}

func isEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}

// fieldError names the field whose value could not be coerced.
type fieldError struct {
	field string
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("invalid value for %s", e.field)
}

func (b body) str(field string) (string, error) {
	switch t := b[field].(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(t), nil
	}
	return "", &fieldError{field}
}

// integer accepts JSON numbers and numeric strings.
func (b body) integer(field string) (int, error) {
	switch t := b[field].(type) {
	case nil:
		return 0, nil
	case float64:
		if t != float64(int(t)) {
			return 0, &fieldError{field}
		}
		return int(t), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, &fieldError{field}
		}
		return n, nil
	}
	return 0, &fieldError{field}
}

// date accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func (b body) date(field string) (time.Time, error) {
	s, ok := b[field].(string)
	if !ok {
		if b[field] == nil {
			return time.Time{}, nil
		}
		return time.Time{}, &fieldError{field}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, &fieldError{field}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals("userID").(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func currentRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals("userRole").(string)
	return models.Role(role)
}
