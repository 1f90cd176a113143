// Package api serves the schedulers over HTTP as a JSON API.
package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/process"
	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/scheduler"
)

const allAlgorithms = "all"

type SchedulerHandler struct {
	quantum int64
}

// NewSchedulerHandler returns a handler that uses quantum for Round-Robin
// unless a request supplies its own.
func NewSchedulerHandler(quantum int64) *SchedulerHandler {
	return &SchedulerHandler{quantum: quantum}
}

// NewApp wires the handler under /api/v1.
func NewApp(quantum int64) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := NewSchedulerHandler(quantum)

	v1 := app.Group("/api").Group("/v1")
	{
		v1.Get("/algorithms", h.Algorithms)
		v1.Post("/:algorithm", h.Schedule)
	}
	return app
}

func (h *SchedulerHandler) Algorithms(ctx *fiber.Ctx) error {
	names := make([]string, 0, len(scheduler.Algorithms)+1)
	for _, a := range scheduler.Algorithms {
		names = append(names, string(a))
	}
	names = append(names, allAlgorithms)
	return ctx.JSON(fiber.Map{"algorithms": names})
}

// Schedule runs the algorithm named in the route, or every algorithm for
// "all", on the processes in the request body.
func (h *SchedulerHandler) Schedule(ctx *fiber.Ctx) error {
	name := ctx.Params("algorithm")

	algs := scheduler.Algorithms
	if name != allAlgorithms {
		alg, err := scheduler.ParseAlgorithm(name)
		if err != nil {
			return fail(ctx, fiber.StatusNotFound, err)
		}
		algs = []scheduler.Algorithm{alg}
	}

	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return fail(ctx, fiber.StatusBadRequest, errors.New("invalid request format"))
	}
	processes := request.processes()
	if err := process.Validate(processes); err != nil {
		return fail(ctx, fiber.StatusBadRequest, err)
	}

	quantum := h.quantum
	if request.Quantum != 0 {
		quantum = request.Quantum
	}
	results, err := scheduler.RunAll(processes, quantum, algs...)
	if err != nil {
		return fail(ctx, fiber.StatusBadRequest, err)
	}

	responses := make([]ScheduleResponse, len(results))
	for i, r := range results {
		responses[i] = newScheduleResponse(r)
	}
	if name != allAlgorithms {
		return ctx.JSON(responses[0])
	}
	return ctx.JSON(fiber.Map{"schedules": responses})
}

func fail(ctx *fiber.Ctx, status int, err error) error {
	log.Printf("%s %s: %v", ctx.Method(), ctx.Path(), err)
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
