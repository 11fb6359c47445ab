package domain

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Storage partition namespaces. Each schema version owns its own namespaces;
// a new version adds new ones and never reuses or reinterprets rows owned by
// a prior version. Namespace keys must be pairwise distinct — enforced by a
// unit test over AllNamespaces and by a UNIQUE constraint on the partition
// registry table.
const (
	// NamespaceCoreV1 holds total/max supply (schema version 1).
	NamespaceCoreV1 = "stakeledger.v1.core"
	// NamespaceRolesV1 holds the administrator and the minter set (version 1).
	NamespaceRolesV1 = "stakeledger.v1.roles"
	// NamespaceStakingV2 holds staking parameters, totalStaked and the
	// per-account stake positions (schema version 2).
	NamespaceStakingV2 = "stakeledger.v2.staking"
	// NamespaceCustody derives the custodial account address.
	NamespaceCustody = "stakeledger.custody"
)

// AllNamespaces lists every storage namespace used by the ledger.
func AllNamespaces() []string {
	return []string{
		NamespaceCoreV1,
		NamespaceRolesV1,
		NamespaceStakingV2,
		NamespaceCustody,
	}
}

// PartitionKey derives the 32-byte storage key for a namespace:
// keccak256(namespace) minus one. The fixed offset keeps the key off the raw
// keccak image of any plain field name, so a derived key can never collide
// with one.
func PartitionKey(namespace string) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(namespace))

	var key [32]byte
	copy(key[:], h.Sum(nil))

	// Big-endian decrement.
	for i := len(key) - 1; i >= 0; i-- {
		key[i]--
		if key[i] != 0xff {
			break
		}
	}
	return key
}

// PartitionHex returns the hex-encoded partition key for a namespace.
func PartitionHex(namespace string) string {
	key := PartitionKey(namespace)
	return hex.EncodeToString(key[:])
}
