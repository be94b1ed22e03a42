package settings

import (
	"github.com/josephnicholas/VerusCoin/chaincfg"
)

func NewSettings() *Settings {
	params, err := chaincfg.GetChainParams(getString("network", "mainnet"))
	if err != nil {
		panic(err)
	}

	return &Settings{
		ClientName:     getString("clientName", "verusd"),
		Version:        getString("version", "dev"),
		Commit:         getString("commit", "unknown"),
		LogLevel:       getString("logLevel", "INFO"),
		LoggerType:     getString("logger", "zerolog"),
		ChainCfgParams: params,
		Explorer: ExplorerSettings{
			APIPrefix:         getString("explorer_apiPrefix", "/api/v1"),
			HTTPListenAddress: getString("explorer_httpListenAddress", ":8090"),
			ReadTimeout:       getInt("explorer_readTimeout", 10),
			WriteTimeout:      getInt("explorer_writeTimeout", 10),
			IdleTimeout:       getInt("explorer_idleTimeout", 120),
		},
		Policy: &PolicySettings{
			MaxScriptSizePolicy: getInt("maxscriptsizepolicy", 10000),
			MaxTxSizePolicy:     getInt("maxtxsizepolicy", 10485760), // 10MB
			AcceptNonStdOutputs: getBool("acceptnonstdoutputs", true),
		},
		ProfilerAddr: getString("profilerAddr", ""),
		StatsPrefix:  getString("stats_prefix", "verusd"),
	}
}
