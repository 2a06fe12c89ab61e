package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numerical/core/model"
	"github.com/YuminosukeSato/numerical/linear"
	"github.com/YuminosukeSato/numerical/metrics"
	"github.com/YuminosukeSato/numerical/pkg/errors"
	"github.com/YuminosukeSato/numerical/pkg/log"
)

// housingExample is the price-by-area data set: a bias column and the area.
func housingExample() (x, y, theta *mat.Dense) {
	x = mat.NewDense(3, 2, []float64{
		1, 50,
		1, 60,
		1, 100,
	})
	y = mat.NewDense(3, 1, []float64{120, 150, 250})
	theta = mat.NewDense(1, 2, []float64{1, 1})
	return x, y, theta
}

// andExample is the logical AND truth table with a bias column.
func andExample() (x, y, theta *mat.Dense) {
	x = mat.NewDense(4, 3, []float64{
		1, 0, 0,
		1, 0, 1,
		1, 1, 0,
		1, 1, 1,
	})
	y = mat.NewDense(4, 1, []float64{0, 0, 0, 1})
	theta = mat.NewDense(1, 3, []float64{1, 1, 1})
	return x, y, theta
}

func addFitFlags(cmd *cobra.Command, alpha float64) {
	cmd.Flags().String("strategy", "minibatch", "Gradient descent variant (batch, minibatch, stochastic)")
	cmd.Flags().Float64("alpha", alpha, "Learning rate")
	cmd.Flags().Int("epochs", 1000, "Number of epochs")
	cmd.Flags().Int("batch-size", 1, "Rows per block for the minibatch strategy")
	cmd.Flags().String("save", "", "Write the fitted theta as JSON to this file")
	cmd.Flags().String("load", "", "Skip fitting and use the theta stored in this JSON file")
}

type fitConfig struct {
	strategy  linear.Strategy
	alpha     float64
	epochs    int
	batchSize int
	save      string
	load      string
}

func readFitFlags(cmd *cobra.Command) (fitConfig, error) {
	name, _ := cmd.Flags().GetString("strategy")
	strategy, ok := linear.ParseStrategy(name)
	if !ok {
		return fitConfig{}, errors.NewValidationError("strategy", "must be batch, minibatch or stochastic", name)
	}
	cfg := fitConfig{strategy: strategy}
	cfg.alpha, _ = cmd.Flags().GetFloat64("alpha")
	cfg.epochs, _ = cmd.Flags().GetInt("epochs")
	cfg.batchSize, _ = cmd.Flags().GetInt("batch-size")
	cfg.save, _ = cmd.Flags().GetString("save")
	cfg.load, _ = cmd.Flags().GetString("load")
	return cfg, nil
}

type thetaModel interface {
	model.WeightExporter
	Fit(miniBatchSize int) (*mat.Dense, error)
	Theta() (*mat.Dense, error)
}

// fitOrLoad fits m, or restores its theta from cfg.load when set.
func fitOrLoad(cfg fitConfig, m thetaModel) (*mat.Dense, error) {
	if cfg.load == "" {
		return m.Fit(cfg.batchSize)
	}
	w, err := model.LoadWeights(cfg.load)
	if err != nil {
		return nil, err
	}
	if err := m.ImportWeights(w); err != nil {
		return nil, err
	}
	return m.Theta()
}

func describeFit(cfg fitConfig, kind string) string {
	if cfg.load != "" {
		return fmt.Sprintf("%s regression (loaded from %s)", kind, cfg.load)
	}
	return fmt.Sprintf("%s regression (%s, alpha=%g, epochs=%d)", kind, cfg.strategy, cfg.alpha, cfg.epochs)
}

func saveWeights(path string, m model.WeightExporter) error {
	if path == "" {
		return nil
	}
	w, err := m.ExportWeights()
	if err != nil {
		return err
	}
	return model.SaveWeights(w, path)
}

func newLinearCmd() *cobra.Command {
	linearCmd := &cobra.Command{
		Use:   "linear",
		Short: "Fit the housing example with linear regression",
		Args:  cobra.NoArgs,
		RunE:  LinearHandler,
	}
	addFitFlags(linearCmd, 0.0001)
	linearCmd.Flags().String("plot", "", "Write a PNG of the samples and the fitted line to this file")
	return linearCmd
}

// LinearHandler fits the housing example, or loads a saved theta, and prints
// theta, the training predictions and their MSE, RMSE and R².
func LinearHandler(cmd *cobra.Command, _ []string) error {
	cfg, err := readFitFlags(cmd)
	if err != nil {
		return err
	}

	x, y, initial := housingExample()
	reg := linear.NewLinearRegression(x, y, initial, cfg.alpha, cfg.epochs,
		linear.WithStrategy(cfg.strategy),
		linear.WithLogger(log.GetLoggerWithName("cli")),
	)
	theta, err := fitOrLoad(cfg, reg)
	if err != nil {
		return err
	}

	n, _ := x.Dims()
	predictions := mat.NewDense(n, 1, nil)
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		p, err := reg.Predict(theta, x.RowView(i).T())
		if err != nil {
			return err
		}
		predictions.Set(i, 0, p)
		rows[i] = []string{formatFloat(x.At(i, 1)), formatFloat(y.At(i, 0)), formatFloat(p)}
	}
	mse, err := metrics.MSEMatrix(y, predictions)
	if err != nil {
		return err
	}
	yTrue, yPred := mat.VecDenseCopyOf(y.ColView(0)), mat.VecDenseCopyOf(predictions.ColView(0))
	rmse, err := metrics.RMSE(yTrue, yPred)
	if err != nil {
		return err
	}
	r2, err := metrics.R2Score(yTrue, yPred)
	if err != nil {
		return err
	}
	log.GetLoggerWithName("cli").Info("fit evaluated",
		log.OperationKey, log.OperationPredict,
		log.ModelNameKey, reg.Name(),
		log.LossKey, mse,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, describeFit(cfg, "linear"))
	fmt.Fprintln(out, "theta:")
	renderMatrix(out, theta)
	renderTable(out, []string{"area", "price", "predicted"}, rows)
	fmt.Fprintf(out, "MSE: %s\n", formatFloat(mse))
	fmt.Fprintf(out, "RMSE: %s\n", formatFloat(rmse))
	fmt.Fprintf(out, "R²: %s\n", formatFloat(r2))

	if path, _ := cmd.Flags().GetString("plot"); path != "" {
		if err := savePlot(path, x, y, theta); err != nil {
			return err
		}
		fmt.Fprintf(out, "plot written to %s\n", path)
	}
	return saveWeights(cfg.save, reg)
}

func newLogisticCmd() *cobra.Command {
	logisticCmd := &cobra.Command{
		Use:   "logistic",
		Short: "Fit the logical AND truth table with logistic regression",
		Args:  cobra.NoArgs,
		RunE:  LogisticHandler,
	}
	addFitFlags(logisticCmd, 0.5)
	return logisticCmd
}

// LogisticHandler fits the AND example and prints theta, the predicted
// truth table and its accuracy.
func LogisticHandler(cmd *cobra.Command, _ []string) error {
	cfg, err := readFitFlags(cmd)
	if err != nil {
		return err
	}

	x, y, initial := andExample()
	clf := linear.NewLogisticRegression(x, y, initial, cfg.alpha, cfg.epochs,
		linear.WithStrategy(cfg.strategy),
		linear.WithLogger(log.GetLoggerWithName("cli")),
	)
	theta, err := fitOrLoad(cfg, clf)
	if err != nil {
		return err
	}

	n, _ := x.Dims()
	predictions := make([]bool, n)
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		sample := x.RowView(i).T()
		p, err := clf.Predict(theta, sample)
		if err != nil {
			return err
		}
		prob, err := linear.Probability(theta, sample)
		if err != nil {
			return err
		}
		predictions[i] = p
		rows[i] = []string{
			formatFloat(x.At(i, 1)),
			formatFloat(x.At(i, 2)),
			formatFloat(y.At(i, 0)),
			formatFloat(prob),
			fmt.Sprint(p),
		}
	}
	acc, err := metrics.BinaryAccuracy(y.ColView(0), predictions)
	if err != nil {
		return err
	}
	log.GetLoggerWithName("cli").Info("fit evaluated",
		log.OperationKey, log.OperationPredict,
		log.ModelNameKey, clf.Name(),
		log.AccuracyKey, acc,
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, describeFit(cfg, "logistic"))
	fmt.Fprintln(out, "theta:")
	renderMatrix(out, theta)
	renderTable(out, []string{"a", "b", "a AND b", "probability", "predicted"}, rows)
	fmt.Fprintf(out, "accuracy: %s\n", formatFloat(acc))
	return saveWeights(cfg.save, clf)
}
