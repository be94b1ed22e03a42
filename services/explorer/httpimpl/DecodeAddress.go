package httpimpl

import (
	"encoding/hex"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/josephnicholas/VerusCoin/errors"
	"github.com/josephnicholas/VerusCoin/keyio"
	"github.com/josephnicholas/VerusCoin/tracing"
)

// AddressJSON is the projection of a decoded address.
type AddressJSON struct {
	Address string `json:"address"`
	IsID    bool   `json:"isidentity"`
	Hash160 string `json:"hash160"`
}

// DecodeAddress creates an HTTP handler that decodes a checksummed address
// into its typed form.
//
// URL Parameters:
//   - address: base58check encoded address
//
// Error Responses:
//   - 400 Bad Request: malformed address or checksum mismatch
func (h *HTTP) DecodeAddress() func(c echo.Context) error {
	return func(c echo.Context) error {
		addressStr := c.Param("address")

		_, _, deferFn := tracing.StartTracing(c.Request().Context(), "DecodeAddress_http",
			tracing.WithParentStat(ExplorerStat),
			tracing.WithLogMessage(h.logger, "[Explorer_http] DecodeAddress for %s: %s", c.Request().RemoteAddr, addressStr),
		)

		defer deferFn()

		dest, err := keyio.DecodeDestination(addressStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.NewInvalidArgumentError("invalid address", err).Error())
		}

		prometheusExplorerHTTPDecodeAddress.WithLabelValues("OK", "200").Inc()

		return c.JSONPretty(http.StatusOK, AddressJSON{
			Address: keyio.EncodeDestination(dest),
			IsID:    dest.Type == keyio.DestID,
			Hash160: hex.EncodeToString(dest.Data),
		}, "  ")
	}
}
