package main

import (
	"errors"
	"time"

	"dairy-records/internal/router"
	"dairy-records/internal/seed"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedValue int64
	seedOpts  seed.Options
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga datos de demo en DB_DSN",
	Long: `Carga datos de demo generados con gofakeit, pasando por las mismas validaciones
que la API. Con el mismo --seed se generan los mismos datos.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if cfg.DBDSN == "" {
			return errors.New("DB_DSN is required")
		}
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if seedValue == 0 {
			seedValue = time.Now().UnixNano()
		}
		clock := clockwork.NewRealClock()
		svc := router.NewServices(db, clock)

		report, err := seed.Run(ctx, svc, gofakeit.New(seedValue), clock.Now(), seedOpts, log)
		if err != nil {
			return err
		}
		log.Info("seed done", zap.Int64("seed", seedValue), zap.Any("rows", report))
		return nil
	},
}

func init() {
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "semilla de gofakeit (0 = aleatoria)")
	seedCmd.Flags().IntVar(&seedOpts.Animals, "animals", 20, "cantidad de animales")
	seedCmd.Flags().IntVar(&seedOpts.Employees, "employees", 8, "cantidad de empleados")
	seedCmd.Flags().IntVar(&seedOpts.Weeks, "weeks", 4, "semanas de producción por vaca")
	seedCmd.Flags().IntVar(&seedOpts.Rows, "rows", 10, "filas por módulo (compras, inspecciones, rechazos, reparaciones, vacunas)")
	rootCmd.AddCommand(seedCmd)
}
