package domain

import (
	"encoding/hex"
	"strings"
)

// Address identifies a ledger account. Addresses are opaque identifiers;
// the ledger never interprets them beyond equality and the null check.
type Address string

// ZeroAddress is the null identity. Operations that require a real account
// must reject it.
const ZeroAddress Address = ""

// CustodyAccount is the ledger's own account holding all currently staked
// tokens. Its address is derived from the custody storage namespace so it can
// never collide with a caller-supplied identifier.
var CustodyAccount = func() Address {
	key := PartitionKey(NamespaceCustody)
	return Address("custody:" + hex.EncodeToString(key[:20]))
}()

// IsZero reports whether the address is the null identity.
func (a Address) IsZero() bool {
	return strings.TrimSpace(string(a)) == ""
}

func (a Address) String() string {
	return string(a)
}
