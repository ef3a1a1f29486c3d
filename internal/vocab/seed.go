package vocab

var seedVerbs = []Verb{
	// General Actions
	{ID: 1, English: "be", Spanish: "ser", Category: CategoryGeneral},
	{ID: 2, English: "have", Spanish: "tener", Category: CategoryGeneral},
	{ID: 3, English: "do", Spanish: "hacer", Category: CategoryGeneral},
	{ID: 4, English: "get", Spanish: "conseguir", Category: CategoryGeneral},
	{ID: 5, English: "give", Spanish: "dar", Category: CategoryGeneral},
	{ID: 6, English: "take", Spanish: "tomar", Category: CategoryGeneral},
	{ID: 7, English: "put", Spanish: "poner", Category: CategoryGeneral},
	{ID: 8, English: "use", Spanish: "usar", Category: CategoryGeneral},
	{ID: 9, English: "find", Spanish: "encontrar", Category: CategoryGeneral},
	{ID: 10, English: "keep", Spanish: "guardar", Category: CategoryGeneral},

	// Communication
	{ID: 11, English: "say", Spanish: "decir", Category: CategoryCommunication},
	{ID: 12, English: "speak", Spanish: "hablar", Category: CategoryCommunication},
	{ID: 13, English: "ask", Spanish: "preguntar", Category: CategoryCommunication},
	{ID: 14, English: "answer", Spanish: "responder", Category: CategoryCommunication},
	{ID: 15, English: "tell", Spanish: "contar", Category: CategoryCommunication},
	{ID: 16, English: "call", Spanish: "llamar", Category: CategoryCommunication},
	{ID: 17, English: "write", Spanish: "escribir", Category: CategoryCommunication},
	{ID: 18, English: "read", Spanish: "leer", Category: CategoryCommunication},
	{ID: 19, English: "explain", Spanish: "explicar", Category: CategoryCommunication},
	{ID: 20, English: "listen", Spanish: "escuchar", Category: CategoryCommunication},

	// Thoughts & Emotions
	{ID: 21, English: "think", Spanish: "pensar", Category: CategoryEmotions},
	{ID: 22, English: "know", Spanish: "saber", Category: CategoryEmotions},
	{ID: 23, English: "feel", Spanish: "sentir", Category: CategoryEmotions},
	{ID: 24, English: "want", Spanish: "querer", Category: CategoryEmotions},
	{ID: 25, English: "love", Spanish: "amar", Category: CategoryEmotions},
	{ID: 26, English: "hate", Spanish: "odiar", Category: CategoryEmotions},
	{ID: 27, English: "believe", Spanish: "creer", Category: CategoryEmotions},
	{ID: 28, English: "remember", Spanish: "recordar", Category: CategoryEmotions},
	{ID: 29, English: "forget", Spanish: "olvidar", Category: CategoryEmotions},
	{ID: 30, English: "hope", Spanish: "esperar", Category: CategoryEmotions},

	// Movement
	{ID: 31, English: "go", Spanish: "ir", Category: CategoryMovement},
	{ID: 32, English: "come", Spanish: "venir", Category: CategoryMovement},
	{ID: 33, English: "walk", Spanish: "caminar", Category: CategoryMovement},
	{ID: 34, English: "run", Spanish: "correr", Category: CategoryMovement},
	{ID: 35, English: "jump", Spanish: "saltar", Category: CategoryMovement},
	{ID: 36, English: "swim", Spanish: "nadar", Category: CategoryMovement},
	{ID: 37, English: "climb", Spanish: "escalar", Category: CategoryMovement},
	{ID: 38, English: "fly", Spanish: "volar", Category: CategoryMovement},
	{ID: 39, English: "drive", Spanish: "conducir", Category: CategoryMovement},
	{ID: 40, English: "arrive", Spanish: "llegar", Category: CategoryMovement},

	// Daily Life
	{ID: 41, English: "eat", Spanish: "comer", Category: CategoryDailyLife},
	{ID: 42, English: "drink", Spanish: "beber", Category: CategoryDailyLife},
	{ID: 43, English: "sleep", Spanish: "dormir", Category: CategoryDailyLife},
	{ID: 44, English: "wake up", Spanish: "despertar", Category: CategoryDailyLife},
	{ID: 45, English: "cook", Spanish: "cocinar", Category: CategoryDailyLife},
	{ID: 46, English: "wash", Spanish: "lavar", Category: CategoryDailyLife},
	{ID: 47, English: "clean", Spanish: "limpiar", Category: CategoryDailyLife},
	{ID: 48, English: "work", Spanish: "trabajar", Category: CategoryDailyLife},
	{ID: 49, English: "study", Spanish: "estudiar", Category: CategoryDailyLife},
	{ID: 50, English: "live", Spanish: "vivir", Category: CategoryDailyLife},

	// Shopping
	{ID: 51, English: "buy", Spanish: "comprar", Category: CategoryShopping},
	{ID: 52, English: "sell", Spanish: "vender", Category: CategoryShopping},
	{ID: 53, English: "pay", Spanish: "pagar", Category: CategoryShopping},
	{ID: 54, English: "spend", Spanish: "gastar", Category: CategoryShopping},
	{ID: 55, English: "cost", Spanish: "costar", Category: CategoryShopping},
	{ID: 56, English: "choose", Spanish: "elegir", Category: CategoryShopping},
	{ID: 57, English: "try on", Spanish: "probarse", Category: CategoryShopping},
	{ID: 58, English: "return", Spanish: "devolver", Category: CategoryShopping},
	{ID: 59, English: "save", Spanish: "ahorrar", Category: CategoryShopping},
	{ID: 60, English: "open", Spanish: "abrir", Category: CategoryShopping},
}
