package usecase

const (
	DefaultQueueSize = 64

	// Decoding parameters for the AI backend, fixed per call.
	generationTemperature = 0.7
	generationMaxTokens   = 1500

	subjectDisplayLimit = 80
)

const systemPrompt = "You are an AI assistant specialized in generating professional technical email notifications for software development projects. Always respond with valid JSON containing 'subject' and 'body' keys."

const userPromptTemplate = `Generate a professional and informative email notification for a new pull request in the %s project.

PR Details:
- Title: %s
- PR Number: #%s
- Author: %s
- From Branch: %s
- To Branch: %s
- Description: %s
- Files Changed: %s
- PR URL: %s

Requirements:
1. Create a compelling subject line (max 80 characters)
2. Generate a professional email body that includes:
   - Greeting to the project owner
   - Summary of the PR
   - Key changes or features
   - Call to action for review
   - Professional closing
3. Use a professional but friendly tone
4. Include relevant technical details
5. Format as HTML for better presentation

Return the response in JSON format with 'subject' and 'body' keys.`

// fallbackSubjectFormat takes (number, title).
const fallbackSubjectFormat = "New PR #%s: %s"

// fallbackBodyTemplate takes (owner, project, title, number, author,
// sourceBranch, targetBranch, description, url, project, timestamp).
const fallbackBodyTemplate = `<html>
<body>
    <h2>New Pull Request Notification</h2>

    <p>Hello %s,</p>

    <p>A new pull request has been created for the <strong>%s</strong> project:</p>

    <div style="background: #f8f9fa; padding: 15px; border-radius: 8px; margin: 15px 0;">
        <h3>PR Details</h3>
        <ul>
            <li><strong>Title:</strong> %s</li>
            <li><strong>PR Number:</strong> #%s</li>
            <li><strong>Author:</strong> %s</li>
            <li><strong>From:</strong> %s</li>
            <li><strong>To:</strong> %s</li>
        </ul>
    </div>

    <p><strong>Description:</strong><br>
    %s</p>

    <p style="text-align: center; margin: 20px 0;">
        <a href="%s" style="background: #1f77b4; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">
            Review Pull Request
        </a>
    </p>

    <p>Please review this pull request at your earliest convenience.</p>

    <p>Best regards,<br>
    AI Agent - %s</p>

    <hr>
    <p style="font-size: 12px; color: #666;">
        This email was automatically generated.
        Generated at: %s UTC
    </p>
</body>
</html>`
