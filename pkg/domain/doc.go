// Package domain contains the core entities of the GEMS risk platform:
// assets, countries, baseline threat assessments, barriers and the GeoJSON
// value types used by the map overlay. These types represent business
// concepts and are intentionally free of transport and storage concerns so
// they can be shared across packages.
package domain
