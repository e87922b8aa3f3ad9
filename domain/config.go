package domain

import (
	"crypto/ecdsa"
	"fmt"
	"log"
	"math/big"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/viper"
)

var (
	ErrorNoRpcUrl  = fmt.Errorf("no rpc url is defined")
	ErrorNoChainId = fmt.Errorf("chain id must be a positive integer")

	ErrorNoOperatorKey          = fmt.Errorf("no operator key is defined")
	ErrorOperatorKeyConflict    = fmt.Errorf("only one of operator_key or operator_key_url must be defined")
	ErrorReadingOperatorKeyFile = fmt.Errorf("error in reading operator key file")
	ErrorInvalidOperatorKey     = fmt.Errorf("operator key is not a valid secp256k1 private key")

	ErrorInvalidPoolAddress     = fmt.Errorf("invalid pool address")
	ErrorInvalidContractAddress = fmt.Errorf("invalid contract address in configuration")
	ErrorInvalidAmountValue     = fmt.Errorf("invalid amount value in configuration")

	ErrorInvalidRewardInterval   = fmt.Errorf("invalid time interval for reward claim process")
	ErrorInvalidWithdrawInterval = fmt.Errorf("invalid time interval for pending withdraw process")
)

var (
	TrailingSlashRE = regexp.MustCompile("/+$")
	AddressRE       = regexp.MustCompile("^0x[0-9a-fA-F]{40}$")
)

var (
	dbUri   string
	rpcUrl  string
	chainId *big.Int

	operatorKey        *ecdsa.PrivateKey
	operatorKeyAddress common.Address

	poolAddress      common.Address
	stakingContract  common.Address
	certificateToken common.Address
	unstakeQueue     common.Address
	partnersContract common.Address
	treasuryAddress  common.Address

	operatorAddresses   []common.Address
	governanceAddresses []common.Address

	flashFeeBps          uint64
	flashPoolMinCapacity *big.Int
	minStake             *big.Int
	minUnstake           *big.Int
	distributionGasLimit uint64

	rewardInterval   time.Duration
	withdrawInterval time.Duration
	metricsListen    string
)

func ReadConfig(filePath string) {
	viper.SetConfigFile(filePath)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Failed reading config file: %v\n", err.Error())
	}

	err := initializeVariables()
	if err != nil {
		log.Fatalf("Configuration error - %v\n", err.Error())
	}
}

// This method processes the configuration parameters and keeps the processed
// values in some variables for later accesses rapidly.
func initializeVariables() error {
	var err error

	// Database stuff
	dbUri = TrailingSlashRE.ReplaceAllString(viper.GetString("service_db_uri"), "")

	// Chain stuff
	rpcUrl = strings.TrimSpace(viper.GetString("rpc_url"))
	if rpcUrl == "" {
		return ErrorNoRpcUrl
	}
	chainId = new(big.Int).SetInt64(viper.GetInt64("chain_id"))
	if chainId.Sign() <= 0 {
		return ErrorNoChainId
	}

	// Contract addresses
	poolAddress, err = parseAddress("pool_address")
	if err != nil {
		return ErrorInvalidPoolAddress
	}
	stakingContract, err = parseAddress("staking_contract")
	if err != nil {
		return err
	}
	certificateToken, err = parseAddress("certificate_token")
	if err != nil {
		return err
	}
	unstakeQueue, err = parseAddress("unstake_queue")
	if err != nil {
		return err
	}
	partnersContract, err = parseAddress("partners_contract")
	if err != nil {
		return err
	}
	treasuryAddress, err = parseAddress("treasury_address")
	if err != nil {
		return err
	}

	// Role stuff
	operatorAddresses, err = parseAddressList("operator_addresses")
	if err != nil {
		return err
	}
	governanceAddresses, err = parseAddressList("governance_addresses")
	if err != nil {
		return err
	}

	// Operator key stuff
	key := strings.TrimSpace(viper.GetString("operator_key"))
	keyUrl := strings.TrimSpace(viper.GetString("operator_key_url"))
	if key == "" && keyUrl == "" {
		return ErrorNoOperatorKey
	}
	if key != "" && keyUrl != "" {
		return ErrorOperatorKeyConflict
	}

	hexKey := key
	if keyUrl != "" {
		hexKey, err = readKeyFile(keyUrl)
		if err != nil {
			return ErrorReadingOperatorKeyFile
		}
	}

	operatorKey, err = crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return ErrorInvalidOperatorKey
	}
	operatorKeyAddress = crypto.PubkeyToAddress(operatorKey.PublicKey)

	// Economics stuff
	flashFeeBps = viper.GetUint64("flash_fee_bps")

	flashPoolMinCapacity, err = parseAmount("flash_pool_min_capacity")
	if err != nil {
		return err
	}
	minStake, err = parseAmount("min_stake")
	if err != nil {
		return err
	}
	minUnstake, err = parseAmount("min_unstake")
	if err != nil {
		return err
	}

	distributionGasLimit = viper.GetUint64("distribution_gas_limit")
	if distributionGasLimit == 0 {
		distributionGasLimit = 300_000
	}

	//---------------------------------------------------------------
	// reward interval
	strValue := viper.GetString("reward_interval")
	rewardInterval, err = time.ParseDuration(strValue)
	if err != nil {
		return ErrorInvalidRewardInterval
	}

	//---------------------------------------------------------------
	// withdraw interval
	strValue = viper.GetString("withdraw_interval")
	withdrawInterval, err = time.ParseDuration(strValue)
	if err != nil {
		return ErrorInvalidWithdrawInterval
	}

	metricsListen = strings.TrimSpace(viper.GetString("metrics_listen"))
	if metricsListen == "" {
		metricsListen = ":9090"
	}

	return nil
}

func parseAddress(key string) (common.Address, error) {
	value := strings.TrimSpace(viper.GetString(key))
	if !AddressRE.MatchString(value) {
		return common.Address{}, ErrorInvalidContractAddress
	}
	return common.HexToAddress(value), nil
}

func parseAddressList(key string) ([]common.Address, error) {
	values := viper.GetStringSlice(key)
	list := make([]common.Address, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if !AddressRE.MatchString(value) {
			return nil, ErrorInvalidContractAddress
		}
		list = append(list, common.HexToAddress(value))
	}
	return list, nil
}

func parseAmount(key string) (*big.Int, error) {
	value := strings.TrimSpace(viper.GetString(key))
	if value == "" {
		return new(big.Int), nil
	}
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok || amount.Sign() < 0 {
		return nil, ErrorInvalidAmountValue
	}
	return amount, nil
}

func readKeyFile(filePath string) (string, error) {

	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Failed to read operator key file - %v\n", err.Error())
		return "", err
	}

	return string(fileContent), nil
}

//-------------------------------------------------------------------
// Normal configuration values

func GetDbUri() string {
	return dbUri
}

func GetRpcUrl() string {
	return rpcUrl
}

func GetChainId() *big.Int {
	return chainId
}

func GetOperatorKey() *ecdsa.PrivateKey {
	return operatorKey
}

func GetOperatorKeyAddress() common.Address {
	return operatorKeyAddress
}

func GetPoolAddress() common.Address {
	return poolAddress
}

func GetStakingContract() common.Address {
	return stakingContract
}

func GetCertificateToken() common.Address {
	return certificateToken
}

func GetUnstakeQueue() common.Address {
	return unstakeQueue
}

func GetPartnersContract() common.Address {
	return partnersContract
}

func GetTreasuryAddress() common.Address {
	return treasuryAddress
}

func GetOperatorAddresses() []common.Address {
	return operatorAddresses
}

func GetGovernanceAddresses() []common.Address {
	return governanceAddresses
}

func GetFlashFeeBps() uint64 {
	return flashFeeBps
}

func GetFlashPoolMinCapacity() *big.Int {
	return flashPoolMinCapacity
}

func GetMinStake() *big.Int {
	return minStake
}

func GetMinUnstake() *big.Int {
	return minUnstake
}

func GetDistributionGasLimit() uint64 {
	return distributionGasLimit
}

func GetRewardInterval() time.Duration {
	return rewardInterval
}

func GetWithdrawInterval() time.Duration {
	return withdrawInterval
}

func GetMetricsListen() string {
	return metricsListen
}
