// Package analytics derives the admin panel's reports from snapshots of the
// order log and the product catalog. Every function here is pure: it takes
// its inputs by value, reads no clock and no storage, and returns a fresh
// report. Recomputation and caching are the caller's concern.
package analytics

import (
	"github.com/teesvolubiks/volubiks-cms-backend/models"
)

// AggregateCustomers groups the order log into one profile per shipping
// email in a single pass. Orders without a shipping email are excluded
// entirely; there is no "unknown customer" bucket. Contact fields follow the
// last order processed for that email (orders for one email are assumed
// consistent). First/last order bounds come from a running min/max over each
// order's effective date; orders whose date does not parse leave the bounds
// untouched.
//
// Profiles are returned in first-seen email order. Within a profile, Orders
// preserves log order; consumers sort for display.
func AggregateCustomers(orders []models.Order) []models.CustomerProfile {
	byEmail := make(map[string]*models.CustomerProfile)
	var firstSeen []string

	for _, order := range orders {
		email := order.Shipping.Email
		if email == "" {
			continue
		}

		profile, ok := byEmail[email]
		if !ok {
			profile = &models.CustomerProfile{Email: email, Orders: []models.Order{}}
			byEmail[email] = profile
			firstSeen = append(firstSeen, email)
		}

		profile.Name = order.Shipping.FullName
		profile.Phone = order.Shipping.Phone
		profile.Address = order.Shipping.Address
		profile.City = order.Shipping.City
		profile.Country = order.Shipping.Country

		profile.Orders = append(profile.Orders, order)
		profile.TotalSpent += order.Total

		when, parsed := order.EffectiveTime()
		if !parsed {
			continue
		}
		if profile.FirstOrder == nil || when.Before(*profile.FirstOrder) {
			first := when
			profile.FirstOrder = &first
		}
		if profile.LastOrder == nil || when.After(*profile.LastOrder) {
			last := when
			profile.LastOrder = &last
		}
	}

	profiles := make([]models.CustomerProfile, 0, len(firstSeen))
	for _, email := range firstSeen {
		profiles = append(profiles, *byEmail[email])
	}
	return profiles
}
