package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

const sentimentModelName = "distilbert/distilbert-base-uncased-finetuned-sst-2-english"

// Word-count proxy for the encoder's 512 token window; counting whitespace
// tokens keeps the preprocessor independent of the wordpiece vocabulary.
const hugotMaxInputTokens = 250

// HugotClassifier runs the DistilBERT SST-2 model locally through an ONNX
// runtime session. The model is downloaded on first start and reused
// afterwards; one instance is shared read-only by all requests.
type HugotClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewHugotClassifier(modelDir string) (*HugotClassifier, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, "distilbert-base-uncased-finetuned-sst-2-english")
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[HugotClassifier] Model not found, downloading...",
			slog.String("model", sentimentModelName))
		downloaded, err := hugot.DownloadModel(sentimentModelName, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to download sentiment model: %w", err)
		}
		modelPath = downloaded
		slog.Info("[HugotClassifier] Model downloaded successfully",
			slog.String("path", modelPath))
	} else {
		slog.Info("[HugotClassifier] Using existing model",
			slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "reviewSentimentPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	return &HugotClassifier{session: session, pipeline: pipeline}, nil
}

func (h *HugotClassifier) Classify(ctx context.Context, text string) (Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := h.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("sentiment pipeline failed: %w", err)
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return nil, fmt.Errorf("sentiment pipeline returned no outputs")
	}

	top := output.ClassificationOutputs[0][0]
	score := float64(top.Score)

	switch top.Label {
	case LabelPositive:
		return Distribution{LabelPositive: score, LabelNegative: 1 - score}, nil
	case LabelNegative:
		return Distribution{LabelNegative: score, LabelPositive: 1 - score}, nil
	default:
		return nil, fmt.Errorf("unexpected label from sentiment pipeline: %q", top.Label)
	}
}

func (h *HugotClassifier) MaxInputTokens() int {
	return hugotMaxInputTokens
}

// Close tears down the ONNX runtime session.
func (h *HugotClassifier) Close() {
	if h.session != nil {
		h.session.Destroy()
	}
}
