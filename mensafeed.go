// Package mensafeed turns a cafeteria's weekly menu page into an OpenMensa
// feed. It extracts meals grouped by weekday and dietary category from the
// page HTML, prices them per category and role, and renders the week as an
// OpenMensa v2.1 XML document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, rod/).
package mensafeed
