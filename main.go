package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/numlab/godive/dive"
	"github.com/numlab/godive/lp"
)

var log = setupLogger()

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "godive",
		Short:         "Objective pseudocost diving over linear relaxations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(solveCmd())
	return root
}

func solveCmd() *cobra.Command {
	def := dive.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "solve <problem.json>",
		Short: "Run the diving heuristic on a problem file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	flags := cmd.Flags()
	flags.Bool("verbose", false, "display information while diving")
	flags.Float64("max-iter-quot", def.MaxIterQuot, "maximal fraction of the LP iterations the heuristic may spend")
	flags.Float64("depth-factor", def.DepthFac, "dive depth factor while an incumbent is known")
	flags.Float64("depth-factor-nosol", def.DepthFacNoSol, "dive depth factor while no incumbent is known")
	flags.Float64("min-rel-depth", def.MinRelDepth, "minimal relative search depth to dive at")
	flags.Float64("max-rel-depth", def.MaxRelDepth, "maximal relative search depth to dive at")
	if err := viper.BindPFlags(flags); err != nil {
		log.Fatal(err)
	}
	viper.SetEnvPrefix("GODIVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]
	pb, err := lp.ParseFile(path)
	if err != nil {
		log.Error(err)
		return err
	}
	rel := lp.NewRelaxation(pb)
	if err := rel.Solve(); err != nil {
		log.Error(err)
		return err
	}
	log.WithFields(logrus.Fields{
		"problem":     pb.Name,
		"variables":   rel.NVars(),
		"binaries":    rel.NBinaries(),
		"integers":    rel.NIntegers(),
		"constraints": len(pb.Constrs),
		"status":      rel.Status().String(),
		"objective":   rel.ObjValue(),
	}).Info("relaxation solved")

	cfg := dive.DefaultConfig()
	cfg.MaxIterQuot = viper.GetFloat64("max-iter-quot")
	cfg.DepthFac = viper.GetFloat64("depth-factor")
	cfg.DepthFacNoSol = viper.GetFloat64("depth-factor-nosol")
	cfg.MinRelDepth = viper.GetFloat64("min-rel-depth")
	cfg.MaxRelDepth = viper.GetFloat64("max-rel-depth")

	h := dive.New(rel, cfg)
	h.Verbose = viper.GetBool("verbose")
	res, err := h.Dive()
	if err != nil {
		log.Error(err)
		return err
	}
	log.WithFields(logrus.Fields{
		"result":     res.String(),
		"resolves":   h.Stats.NbResolves,
		"iterations": h.Stats.NbIterations,
		"soft":       h.Stats.NbSoftEdits,
		"hard":       h.Stats.NbHardEdits,
	}).Info("dive finished")

	if vals, obj, ok := rel.Incumbent(); ok {
		fmt.Printf("o %g\n", obj)
		for j, v := range pb.Vars {
			fmt.Printf("v %s = %g\n", v.Name, vals[j])
		}
	} else {
		fmt.Println("o no solution found")
	}
	return nil
}
