package repos

import (
	"context"

	"gorm.io/gorm"

	"transit_manage/internal/models"
)

// deriveRouteAndFleet settles the route and fleet a violation record is
// written with. An unset route comes from the driver's current route; an
// unset fleet comes from that derived route's fleet. Explicit values,
// null included, are used as given.
func deriveRouteAndFleet(ctx context.Context, db *gorm.DB, driverID uint, route, fleet models.Field[uint]) (routeID, fleetID *uint, err error) {
	derived := false
	switch {
	case route.IsNull():
	case route.IsSet():
		id, _ := route.Get()
		routeID = &id
	default:
		driver, err := getMember(ctx, db, driverID)
		if err != nil {
			return nil, nil, err
		}
		routeID = driver.RouteID
		derived = true
	}

	switch {
	case fleet.IsNull():
	case fleet.IsSet():
		id, _ := fleet.Get()
		fleetID = &id
	case derived && routeID != nil:
		r, err := getRoute(ctx, db, *routeID)
		if err != nil {
			return nil, nil, err
		}
		fleetID = r.FleetID
	}
	return routeID, fleetID, nil
}
