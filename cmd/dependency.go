package cmd

import (
	"database/sql"
	"log"
	"time"

	"stakepool/domain"
	"stakepool/infrastructure/chain"
	"stakepool/infrastructure/dbhandler"
	"stakepool/interface/exporter"
	"stakepool/interface/repository"
	"stakepool/usecase"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

func defaultDependencyInject() {
	var err error
	dbURI := domain.GetDbUri()
	dbPool, err = sql.Open("postgres", dbURI)
	if err != nil {
		log.Fatal(err)
	}
	dbPool.SetMaxOpenConns(20)
	dbPool.SetMaxIdleConns(5)
	dbPool.SetConnMaxIdleTime(1 * time.Minute)
	dbPool.SetConnMaxLifetime(4 * time.Hour)

	dbHandler := dbhandler.DBHandler{DB: dbPool}

	logger, err = zap.NewProduction()
	if err != nil {
		log.Fatal("Unable to create logger: ", err)
	}

	exporter.Init()

	ethClient, err := ethclient.Dial(domain.GetRpcUrl())
	if err != nil {
		log.Fatal("Unable to connect to rpc endpoint: ", err)
	}
	chainClient = chain.NewClient(ethClient, domain.GetOperatorKey(), domain.GetChainId(), domain.GetDistributionGasLimit())

	eventRepository := repository.NewEventRepository(dbHandler)
	ledgerRepository := repository.NewLedgerRepository(dbHandler)

	ledger = loadLedger(ledgerRepository)

	// The custody balance lives on chain; the stored figure is only a
	// fallback for when the node is unreachable.
	balance, err := chainClient.BalanceAt(domain.GetPoolAddress())
	if err != nil {
		log.Printf("🟡 reading pool balance - %v\n", err.Error())
	} else {
		ledger.TotalBalance = balance
	}

	recorder := usecase.NewEventRecorder(ledger, eventRepository, ledgerRepository, logger)

	staking := chain.NewStakingClient(chainClient, ledger.StakingContract)
	token := chain.NewTokenClient(chainClient, domain.GetCertificateToken())
	queue := chain.NewQueueClient(chainClient, domain.GetUnstakeQueue())
	partners := chain.NewPartnersClient(chainClient, domain.GetPartnersContract())
	bank := chain.NewBankClient(chainClient)
	treasury := &domain.StaticTreasury{Addr: domain.GetTreasuryAddress()}
	acl := &domain.StaticAccessControl{
		Operators:  domain.GetOperatorAddresses(),
		Governance: domain.GetGovernanceAddresses(),
	}

	balanceInteractor = usecase.NewBalanceInteractor(ledger, queue)
	delegationInteractor = usecase.NewDelegationInteractor(ledger, staking, balanceInteractor, acl, recorder, domain.GetPoolAddress())
	flashUnstakeInteractor = usecase.NewFlashUnstakeInteractor(ledger, token, balanceInteractor, bank, treasury, recorder)
	stakeInteractor = usecase.NewStakeInteractor(ledger, token, queue, recorder)
	rewardInteractor = usecase.NewRewardInteractor(ledger, staking, bank, partners, acl, recorder)
	adminInteractor = usecase.NewAdminInteractor(ledger, acl, recorder)
}

func loadLedger(ledgerRepository *repository.LedgerRepository) *domain.Ledger {
	stored, err := ledgerRepository.Find()
	if err == nil && stored != nil {
		return stored
	}

	log.Printf("🟡 no stored ledger, initializing from configuration")
	ledger := domain.NewLedger()
	ledger.StakingContract = domain.GetStakingContract()
	ledger.FlashUnstakeFeeBps = domain.GetFlashFeeBps()
	ledger.FlashPoolMinCapacity = domain.GetFlashPoolMinCapacity()
	ledger.Partners = domain.GetPartnersContract()
	ledger.MinStake = domain.GetMinStake()
	ledger.MinUnstake = domain.GetMinUnstake()
	return ledger
}

var dbPool *sql.DB
var logger *zap.Logger
var chainClient *chain.Client
var ledger *domain.Ledger
var balanceInteractor *usecase.BalanceInteractor
var delegationInteractor *usecase.DelegationInteractor
var flashUnstakeInteractor *usecase.FlashUnstakeInteractor
var stakeInteractor *usecase.StakeInteractor
var rewardInteractor *usecase.RewardInteractor
var adminInteractor *usecase.AdminInteractor
