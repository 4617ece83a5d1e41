// Package geo implements the route estimator port against the public
// Nominatim geocoding and OSRM routing services. It is the only outbound
// network adapter in the system and its failures never block order
// placement.
package geo
