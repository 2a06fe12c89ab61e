package model

import (
	"io"
	"os"

	"github.com/YuminosukeSato/numerical/pkg/errors"
)

// SaveWeights は重みをJSONファイルに保存する
//
// 使用例:
//
//	w, _ := reg.ExportWeights()
//	err := model.SaveWeights(w, "theta.json")
func SaveWeights(w *ThetaWeights, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.NewModelError("model.SaveWeights", "create "+filename, err)
	}
	defer file.Close()

	return SaveWeightsToWriter(w, file)
}

// LoadWeights はJSONファイルから重みを読み込む
func LoadWeights(filename string) (*ThetaWeights, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.NewModelError("model.LoadWeights", "open "+filename, err)
	}
	defer file.Close()

	return LoadWeightsFromReader(file)
}

// SaveWeightsToWriter は重みをio.Writerに保存する
func SaveWeightsToWriter(w *ThetaWeights, out io.Writer) error {
	if err := w.Validate(); err != nil {
		return err
	}
	data, err := w.ToJSON()
	if err != nil {
		return err
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write weights")
	}
	return nil
}

// LoadWeightsFromReader はio.Readerから重みを読み込む
func LoadWeightsFromReader(r io.Reader) (*ThetaWeights, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read weights")
	}
	w := &ThetaWeights{}
	if err := w.FromJSON(data); err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
