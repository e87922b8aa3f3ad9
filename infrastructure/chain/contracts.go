package chain

const stakingAbiJson = `[
	{"name":"getRelayerFee","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getMinDelegation","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getTotalDelegated","type":"function","stateMutability":"view","inputs":[{"name":"delegator","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getDelegated","type":"function","stateMutability":"view","inputs":[{"name":"delegator","type":"address"},{"name":"validator","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"delegate","type":"function","stateMutability":"payable","inputs":[{"name":"validator","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"redelegate","type":"function","stateMutability":"payable","inputs":[{"name":"validatorSrc","type":"address"},{"name":"validatorDst","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"undelegate","type":"function","stateMutability":"payable","inputs":[{"name":"validator","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"name":"claimReward","type":"function","stateMutability":"nonpayable","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"claimUndelegated","type":"function","stateMutability":"nonpayable","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

const tokenAbiJson = `[
	{"name":"sharesToBonds","type":"function","stateMutability":"view","inputs":[{"name":"shares","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"bondsToShares","type":"function","stateMutability":"view","inputs":[{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"mint","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"shares","type":"uint256"}],"outputs":[]},
	{"name":"burn","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"shares","type":"uint256"}],"outputs":[]}
]`

const queueAbiJson = `[
	{"name":"getStashedForManualClaims","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"addIntoQueue","type":"function","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"receiver","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

const partnersAbiJson = `[
	{"name":"percentOfDailyRewards","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

var (
	stakingAbi  = mustParseAbi(stakingAbiJson)
	tokenAbi    = mustParseAbi(tokenAbiJson)
	queueAbi    = mustParseAbi(queueAbiJson)
	partnersAbi = mustParseAbi(partnersAbiJson)
)
