package search

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/hitekdb/deeplink/internal/types"
)

// channel is a deduplicated output list that preserves first-seen order.
type channel struct {
	values *orderedmap.OrderedMap[string, struct{}]
}

func newChannel() *channel {
	return &channel{values: orderedmap.NewOrderedMap[string, struct{}]()}
}

// add trims the value and appends it unless it is empty, a stored sentinel,
// or already present. Re-adding an existing value keeps its original position.
func (c *channel) add(raw string) {
	v := strings.TrimSpace(raw)
	if types.IsSentinel(v) {
		return
	}
	if _, exists := c.values.Get(v); exists {
		return
	}
	c.values.Set(v, struct{}{})
}

func (c *channel) list() []string {
	return c.values.Keys()
}

// BuildProfile reduces a deduplicated record list into a single profile.
// Records are consumed in list order; each output channel keeps unique,
// non-sentinel values in first-seen order. The phones channel merges both
// the mobile and alt_mobile fields of every record. Performs no I/O.
func BuildProfile(seed string, records []types.Record) *types.Profile {
	phones := newChannel()
	names := newChannel()
	fnames := newChannel()
	emails := newChannel()
	addresses := newChannel()
	circles := newChannel()
	operators := newChannel()

	for _, rec := range records {
		phones.add(rec.Mobile)
		phones.add(rec.AltMobile)
		names.add(rec.Name)
		fnames.add(rec.FatherName)
		emails.add(rec.Email)
		addresses.add(rec.Address)
		circles.add(rec.Circle)
		operators.add(rec.OperatorID)
	}

	phoneList := phones.list()
	return &types.Profile{
		Seed:         seed,
		Found:        len(records) > 0,
		TotalRecords: len(records),
		TotalPhones:  len(phoneList),
		Phones:       phoneList,
		Names:        names.list(),
		FatherNames:  fnames.list(),
		Emails:       emails.list(),
		Addresses:    addresses.list(),
		Circles:      circles.list(),
		OperatorIDs:  operators.list(),
	}
}
