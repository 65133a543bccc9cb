package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle    = "app_title"
	KeyEditorTitle = "editor_title"
	KeyViewerTitle = "viewer_title"
	KeyChooseMode  = "choose_mode"
	KeyEditor      = "editor"
	KeyViewer      = "viewer"
	KeyQuit        = "quit"

	KeyLoadSceneImage = "load_scene_image"
	KeyAddButton      = "add_button"
	KeyBack           = "back"
	KeySaveProject    = "save_project"
	KeyLoadProject    = "load_project"
	KeyButtons        = "buttons"
	KeyGo             = "go"
	KeySceneLabel     = "scene_label"
	KeyNoScene        = "no_scene"

	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyDirectories        = "directories"
	KeyInterface          = "interface"
	KeyProjectDirectory   = "project_directory"
	KeyImageDirectory     = "image_directory"
	KeyShowViewerHotspots = "show_viewer_hotspots"
	KeySettingsSaved      = "settings_saved"

	KeyDragHint        = "drag_hint"
	KeyPickTargetHint  = "pick_target_hint"
	KeyHotspotAdded    = "hotspot_added"
	KeyNoHistory       = "no_history"
	KeySceneNotFound   = "scene_not_found"
	KeyLoadImageFirst  = "load_image_first"
	KeyProjectSaved    = "project_saved"
	KeyProjectLoaded   = "project_loaded"
	KeyEmptyProject    = "empty_project"
	KeyImageLoadFailed = "image_load_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:    "Image Navigator",
		KeyEditorTitle: "Image Navigator - Editor",
		KeyViewerTitle: "Image Navigator - Viewer",
		KeyChooseMode:  "Choose a mode",
		KeyEditor:      "Editor",
		KeyViewer:      "Viewer",
		KeyQuit:        "Quit",

		KeyLoadSceneImage: "Load Scene Image",
		KeyAddButton:      "Add Button",
		KeyBack:           "Back",
		KeySaveProject:    "Save Project",
		KeyLoadProject:    "Load Project",
		KeyButtons:        "Buttons",
		KeyGo:             "Go",
		KeySceneLabel:     "Scene: %s",
		KeyNoScene:        "No scene loaded",

		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyDirectories:        "Directories",
		KeyInterface:          "Interface",
		KeyProjectDirectory:   "Project Directory",
		KeyImageDirectory:     "Image Directory",
		KeyShowViewerHotspots: "Show buttons in viewer",
		KeySettingsSaved:      "Settings saved successfully!",

		KeyDragHint:        "Drag a rectangle on the image to make a button.",
		KeyPickTargetHint:  "Pick an image for the target scene.",
		KeyHotspotAdded:    "Button added: %s",
		KeyNoHistory:       "No previous scene.",
		KeySceneNotFound:   "Scene '%s' not found.",
		KeyLoadImageFirst:  "Load a scene image first.",
		KeyProjectSaved:    "Project saved to %s",
		KeyProjectLoaded:   "Project loaded: %s",
		KeyEmptyProject:    "Nothing to save yet.",
		KeyImageLoadFailed: "Could not open image %s",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:    "Навигатор изображений",
		KeyEditorTitle: "Навигатор изображений - Редактор",
		KeyViewerTitle: "Навигатор изображений - Просмотр",
		KeyChooseMode:  "Выберите режим",
		KeyEditor:      "Редактор",
		KeyViewer:      "Просмотр",
		KeyQuit:        "Выход",

		KeyLoadSceneImage: "Загрузить изображение сцены",
		KeyAddButton:      "Добавить кнопку",
		KeyBack:           "Назад",
		KeySaveProject:    "Сохранить проект",
		KeyLoadProject:    "Открыть проект",
		KeyButtons:        "Кнопки",
		KeyGo:             "Перейти",
		KeySceneLabel:     "Сцена: %s",
		KeyNoScene:        "Сцена не загружена",

		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyDirectories:        "Каталоги",
		KeyInterface:          "Интерфейс",
		KeyProjectDirectory:   "Каталог проектов",
		KeyImageDirectory:     "Каталог изображений",
		KeyShowViewerHotspots: "Показывать кнопки в просмотре",
		KeySettingsSaved:      "Настройки успешно сохранены!",

		KeyDragHint:        "Растяните прямоугольник на изображении, чтобы создать кнопку.",
		KeyPickTargetHint:  "Выберите изображение целевой сцены.",
		KeyHotspotAdded:    "Кнопка добавлена: %s",
		KeyNoHistory:       "Нет предыдущей сцены.",
		KeySceneNotFound:   "Сцена '%s' не найдена.",
		KeyLoadImageFirst:  "Сначала загрузите изображение сцены.",
		KeyProjectSaved:    "Проект сохранён в %s",
		KeyProjectLoaded:   "Проект загружен: %s",
		KeyEmptyProject:    "Пока нечего сохранять.",
		KeyImageLoadFailed: "Не удалось открыть изображение %s",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:    "Image Navigator",
		KeyEditorTitle: "Image Navigator - Editor",
		KeyViewerTitle: "Image Navigator - Visualizador",
		KeyChooseMode:  "Escolha um modo",
		KeyEditor:      "Editor",
		KeyViewer:      "Visualizador",
		KeyQuit:        "Sair",

		KeyLoadSceneImage: "Carregar Imagem da Cena",
		KeyAddButton:      "Adicionar Botão",
		KeyBack:           "Voltar",
		KeySaveProject:    "Salvar Projeto",
		KeyLoadProject:    "Abrir Projeto",
		KeyButtons:        "Botões",
		KeyGo:             "Ir",
		KeySceneLabel:     "Cena: %s",
		KeyNoScene:        "Nenhuma cena carregada",

		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyDirectories:        "Diretórios",
		KeyInterface:          "Interface",
		KeyProjectDirectory:   "Diretório de Projetos",
		KeyImageDirectory:     "Diretório de Imagens",
		KeyShowViewerHotspots: "Mostrar botões no visualizador",
		KeySettingsSaved:      "Configurações salvas com sucesso!",

		KeyDragHint:        "Arraste um retângulo na imagem para criar um botão.",
		KeyPickTargetHint:  "Escolha uma imagem para a cena de destino.",
		KeyHotspotAdded:    "Botão adicionado: %s",
		KeyNoHistory:       "Nenhuma cena anterior.",
		KeySceneNotFound:   "Cena '%s' não encontrada.",
		KeyLoadImageFirst:  "Carregue uma imagem de cena primeiro.",
		KeyProjectSaved:    "Projeto salvo em %s",
		KeyProjectLoaded:   "Projeto carregado: %s",
		KeyEmptyProject:    "Nada para salvar ainda.",
		KeyImageLoadFailed: "Não foi possível abrir a imagem %s",
	}
}
