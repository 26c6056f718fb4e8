package report

import "github.com/pdfcpu/pdfcpu/pkg/api"

// mergePDFs concatenates the inputs into outFile with the default pdfcpu
// configuration.
func mergePDFs(inFiles []string, outFile string) error {
	return api.MergeCreateFile(inFiles, outFile, false, nil)
}
