package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.jwtMiddleware)

	mux := pat.New()

	// Usuarios
	mux.Post("/usuarios/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/usuarios/login", standardMiddleware.ThenFunc(app.userHandler.Login))

	// Deudas
	mux.Post("/deudas/registrar/compra", authMiddleware.ThenFunc(app.debtHandler.RegistrarCompra))
	mux.Post("/deudas/registrar/servicio", authMiddleware.ThenFunc(app.debtHandler.RegistrarServicio))
	mux.Post("/deudas/registrar/impuesto", authMiddleware.ThenFunc(app.debtHandler.RegistrarImpuesto))
	mux.Get("/deudas/consultar", authMiddleware.ThenFunc(app.debtHandler.ConsultarDeudas))
	mux.Get("/deudas/vencen-hoy", authMiddleware.ThenFunc(app.debtHandler.VencenHoy))
	mux.Post("/deudas/marcar-pagada/:id", authMiddleware.ThenFunc(app.debtHandler.MarcarPagada))

	// Cronograma
	mux.Post("/deudas/registrar/cronograma", authMiddleware.ThenFunc(app.scheduleHandler.RegistrarCronograma))
	mux.Get("/deudas/cronograma", authMiddleware.ThenFunc(app.scheduleHandler.ObtenerCronograma))
	mux.Post("/deudas/marcar-pagada-cronograma/:id", authMiddleware.ThenFunc(app.scheduleHandler.MarcarPagoCronograma))

	return mux
}
