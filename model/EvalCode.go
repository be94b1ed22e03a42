package model

// Evaluation codes tag the record kind carried by a pay-to-condition
// payload. The space is open: codes outside this table dispatch to the
// explicit "unknown" marker, never to a fault.
const (
	EvalStakeGuard           uint8 = 0x01
	EvalCurrencyDefinition   uint8 = 0x02
	EvalServiceReward        uint8 = 0x03
	EvalEarnedNotarization   uint8 = 0x04
	EvalAcceptedNotarization uint8 = 0x05
	EvalFinalizeNotarization uint8 = 0x06
	EvalCurrencyState        uint8 = 0x07
	EvalReserveTransfer      uint8 = 0x08
	EvalReserveOutput        uint8 = 0x09
	EvalReserveExchange      uint8 = 0x0a
	EvalReserveDeposit       uint8 = 0x0b
	EvalCrossChainExport     uint8 = 0x0c
	EvalCrossChainImport     uint8 = 0x0d
	EvalIdentityPrimary      uint8 = 0x0e
	EvalIdentityRevoke       uint8 = 0x0f
	EvalIdentityRecover      uint8 = 0x10
	EvalIdentityCommitment   uint8 = 0x11
	EvalIdentityReservation  uint8 = 0x12
	EvalIdentityExport       uint8 = 0x13
)
