package settings

import (
	"github.com/josephnicholas/VerusCoin/chaincfg"
)

type ExplorerSettings struct {
	APIPrefix         string
	HTTPListenAddress string
	ReadTimeout       int
	WriteTimeout      int
	IdleTimeout       int
}

type PolicySettings struct {
	MaxScriptSizePolicy int
	MaxTxSizePolicy     int
	AcceptNonStdOutputs bool
}

type Settings struct {
	ClientName     string
	Version        string
	Commit         string
	LogLevel       string
	LoggerType     string
	ChainCfgParams *chaincfg.Params
	Explorer       ExplorerSettings
	Policy         *PolicySettings
	ProfilerAddr   string
	StatsPrefix    string
}
