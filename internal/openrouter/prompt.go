package openrouter

import "fmt"

// generationInstructions is the fixed instruction text sent with every
// completion request. It pins down the output contract: a single JSX file,
// faithful to the wireframe, responsive, and returned as raw code with no
// surrounding commentary or code fences.
const generationInstructions = `Generate a single JSX file that fully recreates the provided wireframe image in React with enhanced UI, smooth animations, interactivity, and a visually appealing layout. Ensure the following requirements are met:

1. Wireframe Accuracy & Layout
   - The generated code should closely resemble the wireframe, maintaining the same layout, structure, and proportions.
   - Ensure all elements are properly aligned, spaced, and positioned using CSS Flexbox or Grid.
   - The design should take up 100% of the screen width while maintaining 100% height.

2. UI Enhancements & Animations
   - Use modern CSS animations such as hover effects, smooth transitions, slide-ins, and fade-ins to make the UI lively.
   - Add interactive elements, including buttons with hover and click effects.
   - Ensure animations are subtle yet engaging without being overwhelming.

3. Color, Typography & Styling
   - Maintain the same color scheme and typography as seen in the wireframe. If no exact colors are available, generate complementary colors to match the design.
   - Use proper font sizes, weights, and spacing for readability.

4. Responsiveness
   - Make the design fully responsive across mobile, tablet, and desktop while maintaining the 100% width constraint.

5. Image Handling
   - If an image is present in the wireframe, fetch and display it. If unavailable, retrieve a relevant random image from the Unsplash API instead.
   - Apply shape masking (rounded corners, circular frames) to keep the design consistent.

6. Code Quality
   - Ensure the generated code is free of syntax and runtime errors and works across browsers.
   - The output must be a single JSX file combining React and CSS in the same file.

Important: do not wrap the generated code in markdown code fences or add any commentary. The response must be plain, directly usable JSX code and nothing else.`

// BuildPrompt combines the fixed instructions with the record's description
// and image URL into the text part of the completion request.
func BuildPrompt(description, imageURL string) string {
	return fmt.Sprintf(
		"Generate React and CSS code for the following wireframe description: %s. The wireframe image URL is: %s.\n\n%s",
		description, imageURL, generationInstructions,
	)
}
