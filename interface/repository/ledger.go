package repository

import (
	"fmt"
	"math/big"
	"time"

	"stakepool/domain"

	"github.com/behrang/sqlbatch"
	"github.com/ethereum/go-ethereum/common"
)

const (
	sqlLedgerUpsert = `
	insert into ledger as l (
			id, total_balance, staking_contract, fee_bps, collected_fee,
			min_capacity, partners, min_stake, min_unstake, update_time
		)
		values (
			1, $1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	on conflict (id) do
		update set
			total_balance = $1, staking_contract = $2, fee_bps = $3,
			collected_fee = $4, min_capacity = $5, partners = $6,
			min_stake = $7, min_unstake = $8, update_time = $9
`

	sqlLedgerFind = `
	select
		total_balance, staking_contract, fee_bps, collected_fee,
		min_capacity, partners, min_stake, min_unstake
	from ledger
	where id = 1
`
)

var ErrorCorruptLedgerRow = fmt.Errorf("stored ledger row holds a non-numeric amount")

// LedgerRepository stores the one ledger row so the collected-fee counter
// and the governance-set figures survive a restart. Amounts are stored as
// decimal text; they do not fit in any SQL integer type.
type LedgerRepository struct {
	batchHandler BatchHandler
}

func NewLedgerRepository(db BatchHandler) *LedgerRepository {
	return &LedgerRepository{batchHandler: db}
}

func readLedger(scan func(...interface{}) error) (interface{}, error) {
	ledger := domain.NewLedger()
	var totalBalance, collectedFee, minCapacity, minStake, minUnstake string
	var stakingContract, partners string
	err := scan(
		&totalBalance, &stakingContract, &ledger.FlashUnstakeFeeBps, &collectedFee,
		&minCapacity, &partners, &minStake, &minUnstake,
	)
	if err != nil {
		return ledger, err
	}

	fields := []struct {
		text  string
		field **big.Int
	}{
		{totalBalance, &ledger.TotalBalance},
		{collectedFee, &ledger.FlashUnstakeCollectedFee},
		{minCapacity, &ledger.FlashPoolMinCapacity},
		{minStake, &ledger.MinStake},
		{minUnstake, &ledger.MinUnstake},
	}
	for _, f := range fields {
		value, ok := new(big.Int).SetString(f.text, 10)
		if !ok {
			return ledger, ErrorCorruptLedgerRow
		}
		*f.field = value
	}

	ledger.StakingContract = common.HexToAddress(stakingContract)
	ledger.Partners = common.HexToAddress(partners)
	return ledger, nil
}

func (repo *LedgerRepository) Save(ledger *domain.Ledger) error {
	_, err := repo.batchHandler.Batch(&BatchOptionNormal, []sqlbatch.Command{
		{
			Query: sqlLedgerUpsert,
			Args: []interface{}{
				ledger.TotalBalance.String(),
				ledger.StakingContract.Hex(),
				ledger.FlashUnstakeFeeBps,
				ledger.FlashUnstakeCollectedFee.String(),
				ledger.FlashPoolMinCapacity.String(),
				ledger.Partners.Hex(),
				ledger.MinStake.String(),
				ledger.MinUnstake.String(),
				time.Now(),
			},
			Affect: 1,
		},
	})
	return err
}

func (repo *LedgerRepository) Find() (*domain.Ledger, error) {
	results, err := repo.batchHandler.Batch(&BatchOptionNormalReadOnly, []sqlbatch.Command{
		{
			Query:   sqlLedgerFind,
			ReadOne: readLedger,
		},
	})
	result, _ := results[0].(*domain.Ledger)
	return result, err
}
