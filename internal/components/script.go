package components

// revealScript is the browser side of the page: it plays the same scroll and
// reveal rules as internal/landing using the thresholds rendered into the
// markup.
const revealScript = `
(function () {
  var content = document.getElementById("main-content");
  if (content && content.dataset.shown !== "true") {
    var threshold = Number(content.dataset.scrollThreshold);
    var onScroll = function () {
      if (window.scrollY <= threshold) return;
      content.classList.remove("opacity-0", "pointer-events-none", "select-none", "h-0", "overflow-hidden");
      content.classList.add("opacity-100", "pointer-events-auto", "select-auto");
      content.dataset.shown = "true";
      window.removeEventListener("scroll", onScroll);
    };
    window.addEventListener("scroll", onScroll);
    onScroll();
  }

  document.querySelectorAll("[data-reveal-threshold]").forEach(function (el) {
    var observer = new IntersectionObserver(function (entries) {
      if (!entries[0].isIntersecting) return;
      el.classList.remove("opacity-0", "translate-y-10");
      el.classList.add("opacity-100", "translate-y-0");
      observer.disconnect();
    }, { threshold: Number(el.dataset.revealThreshold) });
    observer.observe(el);
  });

  document.querySelectorAll("[data-scroll-to]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      var target = document.getElementById(btn.dataset.scrollTo);
      if (target) target.scrollIntoView({ behavior: "smooth", block: "start" });
    });
  });

  document.addEventListener("keydown", function (e) {
    if (e.key !== "Escape") return;
    var close = document.querySelector("[data-overlay-close]");
    if (close) close.click();
  });
})();
`
