package doc

import "github.com/bridgefs/bridgefs/pkg/cli"

var OwnershipCmd = &cli.Command{
	UsageLine: "ownership",
	Short:     "Directory listing ownership protocol",
	Long: `
Directory listing results cross an ownership boundary: the handler produces
the entry names, but the driver is the one that delivers them to the kernel
and decides when the backing memory dies. Bridgefs uses an allocator handoff
to make that boundary explicit.

When a directory listing is dispatched, the driver passes the handler an
allocator for entry lists. The handler requests a list sized to its needs,
appends entry names to it, and returns it together with its result code. The
driver owns the returned list from that point on: it drains the entries into
the host filesystem layer and releases the list exactly once, whether or not
delivery succeeded. The handler must not retain or append to a list after
returning it; appending to a released list panics.

The result contract around the handoff:

  - A nil list denotes a missing directory and maps to ENOENT. No entries
    are delivered and nothing is released.
  - An empty (but non-nil) list is a successful listing of zero entries.
  - If the host layer rejects an entry mid-delivery, delivery stops and the
    operation fails with EIO. Entries already delivered stand; there is no
    rollback.

An earlier revision of the protocol was acknowledgement-gated instead: the
handler sent entries one at a time and waited for a per-entry ack before
producing the next, which let the driver apply backpressure but cost one
round trip per entry and left the handler holding partially-transferred
state on failure. The allocator handoff replaced it; the ack-gated form is
retained here only as a record and is not implemented.
`,
}
