package shared

import (
	"fmt"
	"strconv"
	"strings"

	"tavola/shared/constant"
	"tavola/shared/dto"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("failed to convert string to int: %w", err)
	}

	return intValue, nil
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and the non-empty parts with the cache key separator.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, constant.CacheKeyGlue)
}
