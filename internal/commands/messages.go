package commands

// Usage strings shown with an invalid command format.
const (
	UsageHelp = "help: Shows program usage instructions.\nExample: help"
	UsageExit = "exit: Exits the program.\nExample: exit"

	UsageAddContact = "add: Adds a person to the address book. Parameters: " +
		"n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"
	UsageEditContact = "edit: Edits the details of the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: edit 1 p/91234567 e/johndoe@example.com"
	UsageDeleteContact = "delete: Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: delete 1"
	UsageFindContacts = "find: Finds all persons whose names contain any of the specified keywords (case-insensitive) " +
		"and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\nExample: find alice bob charlie"
	UsageListContacts  = "list: Lists all persons.\nExample: list"
	UsageClearContacts = "clear: Clears the address book.\nExample: clear"

	UsageSchedule = "task: Manages the schedule. Sub-commands: add, edit, delete, find, list\n" +
		"The sub-command may also come first.\nExample: task list, list task"
	UsageAddTask = "task add: Adds a task to the schedule. Parameters: " +
		"t/TITLE [d/DESCRIPTION] [dt/YYYY-MM-DD HH:MM] [dur/MINUTES]\n" +
		"Example: task add t/CS2103 tutorial d/prepare slides dt/2024-03-01 14:00 dur/60"
	UsageEditTask = "task edit: Edits the task identified by the index number used in the displayed task list.\n" +
		"Parameters: INDEX (must be a positive integer) [t/TITLE] [d/DESCRIPTION] [dt/YYYY-MM-DD HH:MM] [dur/MINUTES]\n" +
		"Example: task edit 1 d/read chapter 4"
	UsageDeleteTask = "task delete: Deletes the task identified by the index number used in the displayed task list.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: task delete 1"
	UsageFindTasks = "task find: Finds all tasks whose title or description contain any of the specified keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\nExample: task find tutorial"
	UsageListTasks = "task list: Lists all tasks.\nExample: task list"

	UsageFlashcardSets = "flset: Manages flashcard sets. Sub-commands: add, delete, find, list, view\n" +
		"The sub-command may also come first.\nExample: flset list, list flset"
	UsageAddFlashcardSet = "flset add: Adds a flashcard set. Parameters: n/NAME\n" +
		"Example: flset add n/Biology"
	UsageDeleteFlashcardSet = "flset delete: Deletes the flashcard set identified by the index number used in the displayed set list.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: flset delete 1"
	UsageFindFlashcardSets = "flset find: Finds all flashcard sets whose names contain any of the specified keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\nExample: flset find biology"
	UsageListFlashcardSets = "flset list: Lists all flashcard sets.\nExample: flset list"
	UsageViewFlashcardSet  = "flset view: Shows the flashcards of the set identified by the index number used in the displayed set list.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: flset view 1"

	UsageFlashcards = "fl: Manages flashcards inside a set. Sub-commands: add, edit, delete\n" +
		"The sub-command may also come first.\n" +
		"Example: fl add 1 q/What is a cell? a/The unit of life"
	UsageAddFlashcard = "fl add: Adds a flashcard to the set identified by the index number used in the displayed set list.\n" +
		"Parameters: SET_INDEX q/QUESTION a/ANSWER\nExample: fl add 1 q/What is a cell? a/The unit of life"
	UsageEditFlashcard = "fl edit: Edits a flashcard of a set.\n" +
		"Parameters: SET_INDEX CARD_INDEX [q/QUESTION] [a/ANSWER]\nExample: fl edit 1 2 a/Mitochondria"
	UsageDeleteFlashcard = "fl delete: Deletes a flashcard of a set.\n" +
		"Parameters: SET_INDEX CARD_INDEX\nExample: fl delete 1 2"

	UsageStartQuiz = "start: Starts a quiz on the flashcard set identified by the index number used in the displayed set list.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: start 1"
	UsageAnswerQuiz   = "ans: Records whether you answered the current question correctly.\nParameters: c|w\nExample: ans c"
	UsageContinueQuiz = "continue: Shows the answer of the current question.\nExample: continue"
	UsageRefreshQuiz  = "refresh: Shows the last quiz state again.\nExample: refresh"
	UsageCancelQuiz   = "cancel: Abandons the ongoing quiz without recording a score.\nExample: cancel"
	UsageStopQuiz     = "stop: Ends the ongoing quiz and records the score.\nExample: stop"
	UsageShowScore    = "score: Shows the last quiz score of the flashcard set identified by the index number used in the displayed set list.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: score 1"
)

// Feedback messages.
const (
	MessageHelp    = "Opened help window.\n" + UsageHelp
	MessageExit    = "Exiting StudyBananas as requested ..."
	MessageRefresh = "Refreshed! Here is your last quiz state:\n\n"

	MessageAddContact    = "New person added: %s"
	MessageEditContact   = "Edited Person: %s"
	MessageDeleteContact = "Deleted Person: %s"
	MessageNoFieldEdited = "At least one field to edit must be provided."
	MessageClearContacts = "Address book has been cleared!"
	MessageListContacts  = "Listed all persons"
	MessagePersonsListed = "%d persons listed!"

	MessageAddTask     = "New task added: %s"
	MessageEditTask    = "Edited Task: %s"
	MessageDeleteTask  = "Deleted Task: %s"
	MessageListTasks   = "Listed all tasks"
	MessageTasksListed = "%d tasks listed!"

	MessageAddFlashcardSet    = "New flashcard set added: %s"
	MessageDeleteFlashcardSet = "Deleted flashcard set: %s"
	MessageListFlashcardSets  = "Listed all flashcard sets"
	MessageSetsListed         = "%d flashcard sets listed!"
	MessageViewFlashcardSet   = "Viewing flashcard set: %s"
	MessageAddFlashcard       = "New flashcard added to %s: %s"
	MessageEditFlashcard      = "Edited flashcard in %s: %s"
	MessageDeleteFlashcard    = "Deleted flashcard from %s: %s"

	MessageQuestion   = "Question %d of %d: %s"
	MessageAnswer     = "Answer: %s"
	MessageQuizDone   = "You have answered all %d questions. Key `stop' to see your score."
	MessageQuizStop   = "Quiz on %s ended. You scored %d/%d (%.2f%%)."
	MessageQuizCancel = "Quiz cancelled. No score was recorded."
	MessageScore      = "Last score for %s: %d/%d (%.2f%%)"
)
