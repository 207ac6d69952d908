package app

import "github.com/tienhung-ho/my-hotel-merger/internal/domain"

// Group partitions records by identity key. Group order follows the first
// appearance of each key, and members keep their ingestion order inside the
// group; both matter for the reconciler's tie-breaks. No dedup happens here,
// a supplier may legitimately emit several partial records for one hotel.
func Group(records []domain.HotelRecord) []domain.Group {
	idx := make(map[domain.Key]int, len(records))
	groups := make([]domain.Group, 0, len(records))
	for _, r := range records {
		k := r.Identity()
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, domain.Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}
