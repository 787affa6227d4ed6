package text_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/walteh/slidefit/pkg/text"
)

func ExamplePipeline_Run() {
	// Halve every pixel value
	halve := text.NewRegexpRule("halve", `(\d+)px`, func(content string, loc []int, groups []string) (string, bool, error) {
		n, err := strconv.Atoi(groups[1])
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("%dpx", n/2), true, nil
	})

	result, err := text.NewPipeline(halve).Run(context.Background(), strings.NewReader("margin: 40px 20px;"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Original: %s\n", result.OriginalContent)
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Original: margin: 40px 20px;
	// Modified: margin: 20px 10px;
	// Changes: 2
	// Was Modified: true
}
