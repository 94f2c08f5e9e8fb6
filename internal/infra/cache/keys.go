package cache

import (
	"fmt"
	"time"
)

// AvailabilityKey builds the cache key for one availability query.
// Layout: avail:{employeeID}:{day}:{serviceID}:{stepMinutes}.
func AvailabilityKey(employeeID int64, day time.Time, serviceID int64, stepMinutes int) string {
	return fmt.Sprintf("avail:%d:%s:%d:%d", employeeID, day.Format("2006-01-02"), serviceID, stepMinutes)
}

// AvailabilityEmployeePrefix covers every cached day for one employee.
// Deleting it invalidates the employee after a booking or reschedule.
func AvailabilityEmployeePrefix(employeeID int64) string {
	return fmt.Sprintf("avail:%d:", employeeID)
}

// AvailabilityAllPrefix covers the whole availability keyspace. Deleted
// when the weekly schedule template changes, since that affects everyone.
func AvailabilityAllPrefix() string {
	return "avail:"
}
