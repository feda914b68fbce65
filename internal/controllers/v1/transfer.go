package v1

import (
	"net/http"

	"github.com/eventbudget/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// TransferEditable moves an amount from the budget of one event to another.
type TransferEditable struct {
	From   uint            `json:"from" binding:"required" example:"1"`       // ID of the event the amount is taken from
	To     uint            `json:"to" binding:"required" example:"2"`         // ID of the event the amount is added to
	Amount httputil.Amount `json:"amount" swaggertype:"string" example:"100"` // The amount to move
}

func RegisterTransferRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransfers)
		r.POST("", CreateTransfer)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Router			/v1/transfers [options]
func OptionsTransfers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Transfer budget
// @Description	Moves an amount between the budgets of two events in one transaction. The sum of both budgets does not change. If either event does not exist, nothing is changed.
// @Tags			Transfers
// @Accept			json
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transfer	body		TransferEditable	true	"Transfer"
// @Router			/v1/transfers [post]
func CreateTransfer(c *gin.Context) {
	var transfer TransferEditable
	err := httputil.BindData(c, &transfer)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	amount, err := transfer.Amount.Value()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = store(c).Transfer(transfer.From, transfer.To, amount)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
