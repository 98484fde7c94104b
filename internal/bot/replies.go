package bot

// Static reply texts. The transports render these verbatim, so they
// stay plain text with no platform-specific markup.
const (
	replyWelcome = `welcome to sleuthbot

you can search exposed data by:
- email / domain
- name / nickname
- phone
- password
- car number / VIN
- social media account
- IP

send a message at any time and it is treated as a search query.`

	replyHelp = `commands:

/start - start the bot
/help - show this help
/search - start a new search
/setapikey - configure your API key
/cancel - cancel the current operation

example searches:
  example@gmail.com
  +79002206090
  127.0.0.1
  Petrov Maxim

any plain message outside a command flow is searched directly.`

	replySearchPrompt = "enter your query\n\nyou can enter an email, phone, IP, VIN, username, etc."

	replyKeyPrompt = "send your API key"

	replyKeySaved = "API key updated"

	replyCancelled = "operation cancelled"

	replyUnknownCommand = "unknown command, try /help"

	replyNotConfigured = "API key not configured, use /setapikey"

	replyInvalidKey = "invalid API key"

	replyQuotaExceeded = "API quota exceeded"

	replyTransportError = "error contacting API"
)
