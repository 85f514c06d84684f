package routes

import (
	"imoveis_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers      = "/users"
	PathApartments = "/apartments"
	PathContracts  = "/contracts"
	PathPayments   = "/payments"
)

func addRentalRoutes(
	rg *gin.RouterGroup,
	userHandler *handlers.UserHandler,
	apartmentHandler *handlers.ApartmentHandler,
	contractHandler *handlers.ContractHandler,
	paymentHandler *handlers.PaymentHandler,
	relationshipHandler *handlers.RelationshipHandler,
	aggregationHandler *handlers.AggregationHandler,
) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:phone", userHandler.GetUser)
		users.PATCH("/:phone", userHandler.UpdateUser)
		users.PATCH("/:phone/activate", userHandler.ActivateUser)
		users.PATCH("/:phone/deactivate", userHandler.DeactivateUser)
		users.PATCH("/:phone/suspend", userHandler.SuspendUser)
		users.DELETE("/:phone", userHandler.DeleteUser)

		users.GET("/:phone/details", aggregationHandler.GetUserDetails)
		users.GET("/:phone/relationships", relationshipHandler.ListByUser)
	}

	apartments := rg.Group(PathApartments)
	{
		apartments.POST("", apartmentHandler.CreateApartment)
		apartments.GET("", apartmentHandler.ListApartments)
		apartments.GET("/statistics", aggregationHandler.GetApartmentStatistics)
		apartments.GET("/:unit_code", apartmentHandler.GetApartment)
		apartments.PATCH("/:unit_code", apartmentHandler.UpdateApartment)
		apartments.PATCH("/:unit_code/status", apartmentHandler.ChangeApartmentStatus)
		apartments.PATCH("/:unit_code/available", apartmentHandler.MarkApartmentAvailable)
		apartments.DELETE("/:unit_code", apartmentHandler.DeleteApartment)

		apartments.GET("/:unit_code/summary", aggregationHandler.GetApartmentSummary)
		apartments.GET("/:unit_code/details", aggregationHandler.GetApartmentDetails)
		apartments.GET("/:unit_code/log", aggregationHandler.GetApartmentLog)
		apartments.GET("/:unit_code/users", aggregationHandler.GetApartmentUsers)

		apartments.POST("/:unit_code/relationships", relationshipHandler.CreateRelationship)
		apartments.GET("/:unit_code/relationships", relationshipHandler.ListByApartment)
		apartments.GET("/:unit_code/relationships/:phone/:role", relationshipHandler.GetRelationship)
		apartments.PATCH("/:unit_code/relationships/:phone/:role/activate", relationshipHandler.ActivateRelationship)
		apartments.PATCH("/:unit_code/relationships/:phone/:role/deactivate", relationshipHandler.DeactivateRelationship)
		apartments.DELETE("/:unit_code/relationships/:phone/:role", relationshipHandler.DeleteRelationship)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/:contract_id", contractHandler.GetContract)
		contracts.PATCH("/:contract_id/activate", contractHandler.ActivateContract)
		contracts.PATCH("/:contract_id/terminate", contractHandler.TerminateContract)
		contracts.PATCH("/:contract_id/expire", contractHandler.ExpireContract)
		contracts.PATCH("/:contract_id/extend", contractHandler.ExtendContract)
		contracts.PATCH("/:contract_id/terms", contractHandler.UpdateContractTerms)

		contracts.GET("/:contract_id/payments", paymentHandler.ListPaymentsByContract)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.POST("/email", paymentHandler.IngestConfirmationEmail)
		payments.POST("/overdue-sweep", paymentHandler.RunOverdueSweep)
		payments.GET("/:unit_code", paymentHandler.ListPaymentsByApartment)
		payments.GET("/:unit_code/:payment_id", paymentHandler.GetPayment)
		payments.PATCH("/:unit_code/:payment_id", paymentHandler.UpdatePayment)
		payments.PATCH("/:unit_code/:payment_id/proof", paymentHandler.SubmitPaymentProof)
		payments.PATCH("/:unit_code/:payment_id/validate", paymentHandler.ValidatePayment)
		payments.PATCH("/:unit_code/:payment_id/reject", paymentHandler.RejectPayment)
		payments.PATCH("/:unit_code/:payment_id/overdue", paymentHandler.MarkPaymentOverdue)
	}
}
