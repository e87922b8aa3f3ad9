package domain

import "github.com/ethereum/go-ethereum/common"

// StaticAccessControl grants roles to fixed address lists read from the
// configuration. It satisfies AccessControl for deployments where the
// consensus-side role registry is not reachable from the driver.
type StaticAccessControl struct {
	Operators  []common.Address
	Governance []common.Address
}

func (acl *StaticAccessControl) IsOperator(caller common.Address) bool {
	return containsAddress(acl.Operators, caller)
}

func (acl *StaticAccessControl) IsGovernance(caller common.Address) bool {
	return containsAddress(acl.Governance, caller)
}

func containsAddress(list []common.Address, addr common.Address) bool {
	for _, a := range list {
		if a == addr {
			return true
		}
	}
	return false
}

// StaticTreasury resolves the sweep recipient from configuration.
type StaticTreasury struct {
	Addr common.Address
}

func (treasury *StaticTreasury) TreasuryAddress() common.Address {
	return treasury.Addr
}
