package domain

// Carrier is the opaque, host-supplied handle representing an in-progress
// transformation chain for one type. The session never inspects it; it only
// threads it through the instrumentation engine's edits.
type Carrier = any

// Edit is a single requested rewrite of a compiled type, expressed as a
// wrapper around the carrier. The instrumentation engine interprets edits;
// the session only sequences them.
type Edit func(Carrier) Carrier
