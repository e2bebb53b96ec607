// Package domain contains the core numeric model for serieslab.
//
// The domain is I/O-agnostic: it does not depend on the terminal, the
// filesystem, or any rendering concern. Infra/adapters map into/from these types.
package domain
