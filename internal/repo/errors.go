package repo

import "errors"

var (
	ErrSurgeryNotFound       = errors.New("surgery not found")
	ErrTargetNotFound        = errors.New("target not found")
	ErrStaffNotFound         = errors.New("staff not found")
	ErrHospitalNotFound      = errors.New("hospital not found")
	ErrRegionNotFound        = errors.New("region not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)

const defaultLimit = 100

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// page slices items according to offset and limit and reports the unpaginated total.
func page[T any](items []T, offset, limit *int) ([]T, int) {
	total := len(items)
	if offset != nil && *offset >= total {
		return []T{}, total
	}

	start := 0
	if offset != nil {
		start = clamp(*offset, 0, total)
	}

	end := total
	if limit != nil && *limit > 0 {
		end = clamp(start+min(*limit, defaultLimit), start, total)
	}
	return items[start:end], total
}
