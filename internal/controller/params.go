package controller

import (
	"strconv"
	"strings"

	"vendor-marketplace-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.InvalidInput("invalid " + name + " format")
	}
	return id, nil
}

func queryInt(ctx *fiber.Ctx, key string, fallback int) int {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// parseServiceIDs accepts repeated services[] fields, repeated services fields
// or a single comma separated services value.
func parseServiceIDs(values map[string][]string) ([]uuid.UUID, error) {
	var raw []string
	for _, key := range []string{"services[]", "services"} {
		for _, v := range values[key] {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					raw = append(raw, part)
				}
			}
		}
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apperror.InvalidInput("invalid service id: " + r)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
