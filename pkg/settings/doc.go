// Package settings declares the Aspect Ratio+ options into a host settings
// registry.
//
// Registration runs once at startup:
//
//	CleanupStaleFields -> BoundsReader.ReadBounds -> hidden sync fields -> visible options
//
// The host registry has register-if-absent value semantics: Register only
// seeds a key's value the first time the key is seen, after which the host's
// persistence owns it. The two hidden sync fields are the exception. They are
// registered and then overwritten with Set so the bounds read on this run
// always win over a previously persisted value. Keeping the two calls
// separate is deliberate and their order matters.
package settings
