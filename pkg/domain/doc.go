// Package domain contains the core domain entities and types used by the
// application. These types mirror the records returned by the inspection
// backend (PCBs, inspection results, analysis previews) and are intentionally
// free of infrastructure concerns so they can be shared across packages.
package domain
