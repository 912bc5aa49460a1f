package catalog

import "fmt"

func init() {
	ix, err := buildIndex(seedCourses, seedLessons, seedQuestions)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	idx = ix
}

var seedCourses = []Course{
	{ID: "es-foundations", Name: "Spanish Foundations"},
	{ID: "es-everyday", Name: "Everyday Spanish"},
}

var seedLessons = []Lesson{
	{
		ID: "es-vocab-greetings", CourseID: "es-foundations", Name: "Greetings",
		Domain: DomainVocabulary, Difficulty: DifficultyBeginner,
		EstimatedMins: 5, XPReward: 20,
		Concepts: []ConceptVariant{
			{
				ConceptID: "greet-hello", Name: "Saying hello", Group: "greetings", Domain: DomainVocabulary,
				EasyQuestionID: "q-greet-hello-e", MediumQuestionID: "q-greet-hello-m", HardQuestionID: "q-greet-hello-h",
			},
			{
				ConceptID: "greet-farewell", Name: "Saying goodbye", Group: "greetings", Domain: DomainVocabulary,
				EasyQuestionID: "q-greet-bye-e", MediumQuestionID: "q-greet-bye-m", HardQuestionID: "q-greet-bye-h",
			},
		},
	},
	{
		ID: "es-grammar-ser-estar", CourseID: "es-foundations", Name: "Ser vs Estar",
		Domain: DomainGrammar, Difficulty: DifficultyIntermediate,
		EstimatedMins: 8, XPReward: 35,
		Concepts: []ConceptVariant{
			{
				ConceptID: "ser-identity", Name: "Ser for identity", Group: "ser-estar", Domain: DomainGrammar,
				EasyQuestionID: "q-ser-e", MediumQuestionID: "q-ser-m", HardQuestionID: "q-ser-h",
			},
			{
				ConceptID: "estar-state", Name: "Estar for states", Group: "ser-estar", Domain: DomainGrammar,
				EasyQuestionID: "q-estar-e", MediumQuestionID: "q-estar-m", HardQuestionID: "q-estar-h",
			},
		},
	},
	{
		ID: "es-listen-numbers", CourseID: "es-foundations", Name: "Numbers by Ear",
		Domain: DomainListening, Difficulty: DifficultyBeginner,
		EstimatedMins: 6, XPReward: 25,
		Concepts: []ConceptVariant{
			{
				ConceptID: "listen-units", Name: "Numbers 1-10", Group: "numbers", Domain: DomainListening,
				EasyQuestionID: "q-num-units-e", MediumQuestionID: "q-num-units-m", HardQuestionID: "q-num-units-h",
			},
			// Easy/medium variants not yet authored for tens; the quiz
			// engine substitutes the hard question in those slots.
			{
				ConceptID: "listen-tens", Name: "Numbers 10-100", Group: "numbers", Domain: DomainListening,
				HardQuestionID: "q-num-tens-h",
			},
		},
	},
	{
		ID: "es-read-menus", CourseID: "es-everyday", Name: "Reading Menus",
		Domain: DomainReading, Difficulty: DifficultyIntermediate,
		EstimatedMins: 10, XPReward: 40,
		Concepts: []ConceptVariant{
			{
				ConceptID: "read-dishes", Name: "Dish names", Group: "food", Domain: DomainReading,
				EasyQuestionID: "q-menu-dish-e", MediumQuestionID: "q-menu-dish-m", HardQuestionID: "q-menu-dish-h",
			},
		},
	},
	{
		ID: "es-conv-ordering", CourseID: "es-everyday", Name: "Ordering Food",
		Domain: DomainConversation, Difficulty: DifficultyAdvanced,
		EstimatedMins: 12, XPReward: 60,
		Concepts: []ConceptVariant{
			{
				ConceptID: "conv-order", Name: "Placing an order", Group: "restaurant", Domain: DomainConversation,
				EasyQuestionID: "q-order-e", MediumQuestionID: "q-order-m", HardQuestionID: "q-order-h",
			},
			{
				ConceptID: "conv-request", Name: "Polite requests", Group: "restaurant", Domain: DomainConversation,
				EasyQuestionID: "q-request-e", MediumQuestionID: "q-request-m", HardQuestionID: "q-request-h",
			},
		},
	},
	// Legacy lesson: flat question list, no concept variants.
	{
		ID: "es-vocab-colors", CourseID: "es-foundations", Name: "Colors",
		Domain: DomainVocabulary, Difficulty: DifficultyBeginner,
		EstimatedMins: 4, XPReward: 15,
		QuestionIDs: []string{"q-color-rojo", "q-color-verde", "q-color-azul"},
	},
}

var seedQuestions = []Question{
	{ID: "q-greet-hello-e", ConceptID: "greet-hello", Difficulty: DifficultyBeginner,
		Prompt: "Which word means 'hello'?", Choices: []string{"hola", "adiós", "gracias", "sí"}, Answer: 0},
	{ID: "q-greet-hello-m", ConceptID: "greet-hello", Difficulty: DifficultyIntermediate,
		Prompt: "Complete: '¡___, buenos días!'", Choices: []string{"Hola", "Hasta", "Nada", "Bien"}, Answer: 0},
	{ID: "q-greet-hello-h", ConceptID: "greet-hello", Difficulty: DifficultyAdvanced,
		Prompt: "Pick the most natural greeting for a stranger at 9am.", Choices: []string{"Buenos días", "Buenas noches", "Hasta luego", "Qué tal anoche"}, Answer: 0},
	{ID: "q-greet-bye-e", ConceptID: "greet-farewell", Difficulty: DifficultyBeginner,
		Prompt: "Which word means 'goodbye'?", Choices: []string{"adiós", "hola", "por favor", "no"}, Answer: 0},
	{ID: "q-greet-bye-m", ConceptID: "greet-farewell", Difficulty: DifficultyIntermediate,
		Prompt: "Complete: 'Me voy, ¡hasta ___!'", Choices: []string{"luego", "hola", "gracias", "bueno"}, Answer: 0},
	{ID: "q-greet-bye-h", ConceptID: "greet-farewell", Difficulty: DifficultyAdvanced,
		Prompt: "Which farewell implies you will meet again tomorrow?", Choices: []string{"Hasta mañana", "Adiós para siempre", "Buenas tardes", "Mucho gusto"}, Answer: 0},

	{ID: "q-ser-e", ConceptID: "ser-identity", Difficulty: DifficultyBeginner,
		Prompt: "'Yo ___ profesor.'", Choices: []string{"soy", "estoy", "es", "está"}, Answer: 0},
	{ID: "q-ser-m", ConceptID: "ser-identity", Difficulty: DifficultyIntermediate,
		Prompt: "'Ellos ___ de México.'", Choices: []string{"son", "están", "somos", "estamos"}, Answer: 0},
	{ID: "q-ser-h", ConceptID: "ser-identity", Difficulty: DifficultyAdvanced,
		Prompt: "Choose the sentence that uses ser correctly.", Choices: []string{"La fiesta es en mi casa", "La fiesta está en mi casa", "Mi casa es cansada", "Yo estoy profesor"}, Answer: 0},
	{ID: "q-estar-e", ConceptID: "estar-state", Difficulty: DifficultyBeginner,
		Prompt: "'Yo ___ cansado.'", Choices: []string{"estoy", "soy", "eres", "es"}, Answer: 0},
	{ID: "q-estar-m", ConceptID: "estar-state", Difficulty: DifficultyIntermediate,
		Prompt: "'La sopa ___ fría.'", Choices: []string{"está", "es", "soy", "son"}, Answer: 0},
	{ID: "q-estar-h", ConceptID: "estar-state", Difficulty: DifficultyAdvanced,
		Prompt: "'Ser aburrido' vs 'estar aburrido': the second means:", Choices: []string{"to feel bored", "to be a boring person", "to bore others", "no difference"}, Answer: 0},

	{ID: "q-num-units-e", ConceptID: "listen-units", Difficulty: DifficultyBeginner,
		Prompt: "You hear 'siete'. Which number is it?", Choices: []string{"7", "6", "8", "9"}, Answer: 0},
	{ID: "q-num-units-m", ConceptID: "listen-units", Difficulty: DifficultyIntermediate,
		Prompt: "You hear 'nueve menos dos'. What is the result?", Choices: []string{"7", "9", "2", "11"}, Answer: 0},
	{ID: "q-num-units-h", ConceptID: "listen-units", Difficulty: DifficultyAdvanced,
		Prompt: "You hear 'tres, cinco, ocho' quickly. What was the middle number?", Choices: []string{"5", "3", "8", "6"}, Answer: 0},
	{ID: "q-num-tens-h", ConceptID: "listen-tens", Difficulty: DifficultyAdvanced,
		Prompt: "You hear 'setenta y cuatro'. Which number is it?", Choices: []string{"74", "64", "47", "77"}, Answer: 0},

	{ID: "q-menu-dish-e", ConceptID: "read-dishes", Difficulty: DifficultyBeginner,
		Prompt: "'Pollo asado' is:", Choices: []string{"roast chicken", "fried fish", "beef stew", "green salad"}, Answer: 0},
	{ID: "q-menu-dish-m", ConceptID: "read-dishes", Difficulty: DifficultyIntermediate,
		Prompt: "Which dish is vegetarian?", Choices: []string{"ensalada de tomate", "chuleta de cerdo", "pollo al ajillo", "albóndigas"}, Answer: 0},
	{ID: "q-menu-dish-h", ConceptID: "read-dishes", Difficulty: DifficultyAdvanced,
		Prompt: "In 'merluza a la plancha con guarnición', the fish is:", Choices: []string{"grilled", "breaded", "raw", "stewed"}, Answer: 0},

	{ID: "q-order-e", ConceptID: "conv-order", Difficulty: DifficultyBeginner,
		Prompt: "To order, you say: 'Para mí, ___ paella.'", Choices: []string{"una", "un", "unos", "el"}, Answer: 0},
	{ID: "q-order-m", ConceptID: "conv-order", Difficulty: DifficultyIntermediate,
		Prompt: "The waiter asks '¿Qué le pongo?'. They want to know:", Choices: []string{"what you'd like", "where you sit", "how you pay", "when you leave"}, Answer: 0},
	{ID: "q-order-h", ConceptID: "conv-order", Difficulty: DifficultyAdvanced,
		Prompt: "Most natural way to order a second round:", Choices: []string{"¿Nos pone otra, por favor?", "Dame más ahora", "Yo quiero que bebes", "Otra vez la cuenta"}, Answer: 0},
	{ID: "q-request-e", ConceptID: "conv-request", Difficulty: DifficultyBeginner,
		Prompt: "Polite 'please' is:", Choices: []string{"por favor", "por nada", "de nada", "claro"}, Answer: 0},
	{ID: "q-request-m", ConceptID: "conv-request", Difficulty: DifficultyIntermediate,
		Prompt: "'¿Me ___ traer la cuenta?'", Choices: []string{"podría", "puedo", "pudo", "podré"}, Answer: 0},
	{ID: "q-request-h", ConceptID: "conv-request", Difficulty: DifficultyAdvanced,
		Prompt: "Which request is the most formal?", Choices: []string{"¿Sería tan amable de traerme agua?", "Tráeme agua", "Agua, ya", "Quiero agua ahora mismo"}, Answer: 0},

	{ID: "q-color-rojo", ConceptID: "", Difficulty: DifficultyAdvanced,
		Prompt: "'Rojo' means:", Choices: []string{"red", "green", "blue", "yellow"}, Answer: 0},
	{ID: "q-color-verde", ConceptID: "", Difficulty: DifficultyAdvanced,
		Prompt: "'Verde' means:", Choices: []string{"green", "red", "purple", "black"}, Answer: 0},
	{ID: "q-color-azul", ConceptID: "", Difficulty: DifficultyAdvanced,
		Prompt: "'Azul' means:", Choices: []string{"blue", "orange", "white", "brown"}, Answer: 0},
}
