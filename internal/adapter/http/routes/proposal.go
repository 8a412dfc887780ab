package routes

import (
	"propostas_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPublicProposals = "/public/proposals"
)

func addProposalFlowRoutes(rg *gin.RouterGroup, flowHandler *handlers.ProposalFlowHandler) {
	proposals := rg.Group(PathPublicProposals)
	{
		proposals.GET("/:token", flowHandler.LoadProposal)
		proposals.GET("/:token/quote", flowHandler.GetQuote)
		proposals.GET("/:token/decisions", flowHandler.ListDecisions)
		proposals.GET("/:token/decisions/:id", flowHandler.GetDecision)

		// Edições locais: não chamam o portal.
		proposals.POST("/:token/selection/toggle", flowHandler.ToggleItem)
		proposals.POST("/:token/selection/set-all", flowHandler.SetAllItems)
		proposals.POST("/:token/selection/note", flowHandler.SetItemNote)
		proposals.POST("/:token/payment", flowHandler.SetPayment)
		proposals.POST("/:token/signature/surface", flowHandler.ReportSurface)
		proposals.POST("/:token/signature/strokes", flowHandler.ApplyStrokes)
		proposals.POST("/:token/signature/clear", flowHandler.ClearSignature)

		// Transições e commits irreversíveis.
		proposals.POST("/:token/start-selection", flowHandler.StartSelection)
		proposals.POST("/:token/start-signing", flowHandler.StartSigning)
		proposals.POST("/:token/selection/submit", flowHandler.SubmitSelection)
		proposals.POST("/:token/sign", flowHandler.SubmitSignature)
		proposals.POST("/:token/confirm", flowHandler.ConfirmAcceptance)
		proposals.POST("/:token/reject", flowHandler.RejectProposal)
	}
}
